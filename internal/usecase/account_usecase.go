package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/iho/bankview/internal/domain"
)

// AccountUseCase owns the application state and applies every mutation
// through a Reducer. The balance is always derived from the current snapshot.
type AccountUseCase struct {
	fetcher TransactionFetcher
	idGen   IDGenerator
	metrics MetricsRecorder
	logger  zerolog.Logger
	now     func() time.Time

	refreshes singleflight.Group

	mu    sync.RWMutex
	state State
}

const refreshKey = "refresh"

// NewAccountUseCase creates a new AccountUseCase starting from an empty state for user.
func NewAccountUseCase(fetcher TransactionFetcher, idGen IDGenerator, metrics MetricsRecorder, logger zerolog.Logger, user domain.User) *AccountUseCase {
	if metrics == nil {
		metrics = nopRecorder{}
	}

	return &AccountUseCase{
		fetcher: fetcher,
		idGen:   idGen,
		metrics: metrics,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
		state:   NewState(user),
	}
}

// Snapshot returns the current state.
func (uc *AccountUseCase) Snapshot() State {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.state
}

// Balance returns the balance of the current state.
func (uc *AccountUseCase) Balance() decimal.Decimal {
	return uc.Snapshot().Balance()
}

// loggerFor prefers the request-scoped logger carried by ctx.
func (uc *AccountUseCase) loggerFor(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &uc.logger
}

func (uc *AccountUseCase) apply(reduce Reducer) (State, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next, err := reduce(uc.state)
	if err != nil {
		return State{}, err
	}
	uc.state = next

	// under the lock so the gauge follows the order states were stored
	uc.metrics.BalanceChanged(next.Balance())
	return next, nil
}

// FetchOutcome describes the result of fetching one collection.
type FetchOutcome struct {
	Kind  domain.Kind
	Count int
	Err   error
}

// RefreshReport describes the result of a Refresh.
type RefreshReport struct {
	Credits FetchOutcome
	Debits  FetchOutcome
	Balance decimal.Decimal
}

// Refresh fetches both collections concurrently. Each successful fetch
// replaces its collection; a failed fetch is logged and leaves its collection
// untouched. Failures are reported, never returned as an error.
//
// Only one refresh runs at a time: a caller arriving while one is in flight
// shares its report, so an older fetch can never overwrite a newer one.
func (uc *AccountUseCase) Refresh(ctx context.Context) RefreshReport {
	ch := uc.refreshes.DoChan(refreshKey, func() (any, error) {
		// detached so one caller going away does not fail the shared refresh
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.fetchTimeout(ctx))
		defer cancel()
		return uc.refresh(fetchCtx), nil
	})

	select {
	case res := <-ch:
		return res.Val.(RefreshReport)
	case <-ctx.Done():
		err := ctx.Err()
		return RefreshReport{
			Credits: FetchOutcome{Kind: domain.KindCredit, Err: err},
			Debits:  FetchOutcome{Kind: domain.KindDebit, Err: err},
			Balance: uc.Balance(),
		}
	}
}

// fetchTimeout keeps the caller's deadline when it has one.
func (uc *AccountUseCase) fetchTimeout(ctx context.Context) time.Duration {
	if deadline, ok := ctx.Deadline(); ok {
		return time.Until(deadline)
	}
	return DefaultFetchTimeout
}

func (uc *AccountUseCase) refresh(ctx context.Context) RefreshReport {
	var report RefreshReport
	var g errgroup.Group

	g.Go(func() error {
		report.Credits = uc.refreshKind(ctx, domain.KindCredit, uc.fetcher.FetchCredits)
		return nil
	})
	g.Go(func() error {
		report.Debits = uc.refreshKind(ctx, domain.KindDebit, uc.fetcher.FetchDebits)
		return nil
	})
	_ = g.Wait()

	report.Balance = uc.Balance()
	return report
}

func (uc *AccountUseCase) refreshKind(ctx context.Context, kind domain.Kind, fetch func(context.Context) ([]domain.Transaction, error)) FetchOutcome {
	start := time.Now()
	txs, err := fetch(ctx)
	uc.metrics.ObserveFetch(kind, err, time.Since(start))

	logger := uc.loggerFor(ctx)
	if err != nil {
		event := logger.Error().Err(err).Str("kind", string(kind))
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			event = event.Str("url", fetchErr.URL).Int("status", fetchErr.StatusCode)
		}
		event.Msg("fetch failed, keeping previous transactions")
		return FetchOutcome{Kind: kind, Err: err}
	}

	withIDs := make([]domain.Transaction, len(txs))
	for i, tx := range txs {
		if tx.ID == "" {
			tx.ID = uc.idGen.Generate()
		}
		withIDs[i] = tx
	}

	state, err := uc.apply(ReplaceTransactions(kind, withIDs))
	if err != nil {
		return FetchOutcome{Kind: kind, Err: err}
	}

	logger.Info().
		Str("kind", string(kind)).
		Int("count", len(withIDs)).
		Str("balance", domain.FormatAmount(state.Balance())).
		Msg("transactions fetched")

	return FetchOutcome{Kind: kind, Count: len(withIDs)}
}

// AddTransactionInput represents a manually entered credit or debit.
type AddTransactionInput struct {
	Description string
	Amount      decimal.Decimal
	Date        string // optional, defaults to now
}

// AddCredit appends a manual credit.
func (uc *AccountUseCase) AddCredit(ctx context.Context, input AddTransactionInput) (*domain.Transaction, error) {
	return uc.addTransaction(ctx, domain.KindCredit, input)
}

// AddDebit appends a manual debit.
func (uc *AccountUseCase) AddDebit(ctx context.Context, input AddTransactionInput) (*domain.Transaction, error) {
	return uc.addTransaction(ctx, domain.KindDebit, input)
}

func (uc *AccountUseCase) addTransaction(ctx context.Context, kind domain.Kind, input AddTransactionInput) (*domain.Transaction, error) {
	if err := domain.ValidateManualAmount(input.Amount); err != nil {
		return nil, &domain.MalformedRecordError{Index: -1, Field: "amount", Value: amountValue(input.Amount), Err: err}
	}

	date := uc.now()
	if strings.TrimSpace(input.Date) != "" {
		parsed, err := domain.ParseDate(input.Date)
		if err != nil {
			return nil, &domain.MalformedRecordError{Index: -1, Field: "date", Value: input.Date, Err: err}
		}
		date = parsed
	}

	tx := domain.Transaction{
		ID:          uc.idGen.Generate(),
		Description: strings.TrimSpace(input.Description),
		Amount:      input.Amount,
		Date:        date,
	}

	state, err := uc.apply(AppendTransaction(kind, tx))
	if err != nil {
		return nil, err
	}
	uc.metrics.TransactionAdded(kind)

	uc.loggerFor(ctx).Info().
		Str("kind", string(kind)).
		Str("id", tx.ID).
		Str("amount", domain.FormatAmount(tx.Amount)).
		Str("balance", domain.FormatAmount(state.Balance())).
		Msg("transaction added")

	return &tx, nil
}

// LogIn performs the mock login: it only records the display name.
func (uc *AccountUseCase) LogIn(ctx context.Context, name string) (domain.User, error) {
	state, err := uc.apply(LogIn(name))
	if err != nil {
		return domain.User{}, err
	}
	uc.metrics.UserLoggedIn()

	uc.loggerFor(ctx).Info().Str("user", state.User.DisplayName).Msg("mock login")
	return state.User, nil
}

// CurrentUser returns the current user.
func (uc *AccountUseCase) CurrentUser() domain.User {
	return uc.Snapshot().User
}

// Profile returns the current user when name matches its display name.
func (uc *AccountUseCase) Profile(name string) (domain.User, error) {
	user := uc.CurrentUser()
	if user.DisplayName != name {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

// amountValue renders a rejected amount without expanding its exponent.
func amountValue(amount decimal.Decimal) string {
	if domain.CheckAmountScale(amount) != nil {
		return fmt.Sprintf("%se%d", amount.Coefficient().String(), amount.Exponent())
	}
	return amount.String()
}
