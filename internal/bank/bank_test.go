// internal/bank/bank_test.go
//
// Account / History / Registry 的單元測試。
// 全部為 in-memory 執行，時間來源以固定時鐘取代。

package bank

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 5, 14, 7, 9, 0, time.FixedZone("BRT", -3*60*60))

func fixedClock() time.Time { return fixedNow }

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// open 為小工具：建立客戶與帳戶，失敗即終止測試。
func open(t *testing.T, r *Registry, name string) *Account {
	t.Helper()
	c, err := NewClient(name)
	require.NoError(t, err)
	a, err := r.Open(c)
	require.NoError(t, err)
	return a
}

func kinds(h *History) []Kind {
	var out []Kind
	for rec := range h.Records() {
		out = append(out, rec.Kind)
	}
	return out
}

// TestAnaScenario 存 100、提 150 失敗、提 50 成功。
func TestAnaScenario(t *testing.T) {
	r := NewRegistry(WithClock(fixedClock))
	a := open(t, r, "Ana")

	require.NoError(t, a.Deposit(d(100)))
	assert.True(t, a.Balance().Equal(d(100)))
	assert.Equal(t, 1, a.History().Len())

	err := a.Withdraw(d(150))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, a.Balance().Equal(d(100)))
	assert.Equal(t, 1, a.History().Len())

	require.NoError(t, a.Withdraw(d(50)))
	assert.True(t, a.Balance().Equal(d(50)))
	assert.Equal(t, []Kind{Deposit, Withdraw}, kinds(a.History()))

	var amounts []string
	for rec := range a.History().Records() {
		amounts = append(amounts, rec.Amount.String())
	}
	assert.Equal(t, []string{"100", "50"}, amounts)
}

// TestInvalidAmounts 0 與負數皆被拒絕，且不改變狀態。
func TestInvalidAmounts(t *testing.T) {
	a := open(t, NewRegistry(), "Bia")
	require.NoError(t, a.Deposit(d(10)))

	for _, amt := range []decimal.Decimal{decimal.Zero, d(-5), decimal.RequireFromString("-0.01")} {
		assert.ErrorIs(t, a.Deposit(amt), ErrInvalidAmount, "deposit %s", amt)
		assert.ErrorIs(t, a.Withdraw(amt), ErrInvalidAmount, "withdraw %s", amt)
	}
	assert.True(t, a.Balance().Equal(d(10)))
	assert.Equal(t, 1, a.History().Len())
}

// TestBalanceInvariant 任意成功序列後，餘額 = 存款總額 - 提款總額，且不為負。
func TestBalanceInvariant(t *testing.T) {
	a := open(t, NewRegistry(), "Caio")
	ops := []struct {
		deposit bool
		amount  string
	}{
		{true, "120.50"}, {false, "20.25"}, {false, "500"}, {true, "0.10"},
		{false, "100.35"}, {false, "0.01"}, {true, "3"}, {false, "3"},
	}
	successes := 0
	for _, op := range ops {
		amt := decimal.RequireFromString(op.amount)
		var err error
		if op.deposit {
			err = a.Deposit(amt)
		} else {
			err = a.Withdraw(amt)
		}
		if err == nil {
			successes++
		}
		dep, wd := a.History().Totals()
		assert.True(t, a.Balance().Equal(dep.Sub(wd)), "balance %s != %s - %s", a.Balance(), dep, wd)
		assert.False(t, a.Balance().IsNegative())
	}
	assert.Equal(t, successes, a.History().Len())
	assert.Equal(t, "0.00", a.Balance().StringFixed(2))
}

// TestHistoryTimestamps 時間以 UTC 保存，且每筆紀錄有唯一 ID。
func TestHistoryTimestamps(t *testing.T) {
	a := open(t, NewRegistry(WithClock(fixedClock)), "Duda")
	require.NoError(t, a.Deposit(d(1)))
	require.NoError(t, a.Deposit(d(2)))

	seen := map[string]bool{}
	for rec := range a.History().Records() {
		assert.Equal(t, time.UTC, rec.Time.Location())
		assert.True(t, rec.Time.Equal(fixedNow))
		assert.False(t, seen[rec.ID.String()], "duplicate id %s", rec.ID)
		seen[rec.ID.String()] = true
	}
	assert.Len(t, seen, 2)
}

// TestRecordsRestartable 同一個序列可重複走訪，且中途停止不影響下一次。
func TestRecordsRestartable(t *testing.T) {
	a := open(t, NewRegistry(), "Edu")
	require.NoError(t, a.Deposit(d(5)))
	require.NoError(t, a.Withdraw(d(2)))
	seq := a.History().Records()

	for rec := range seq {
		assert.Equal(t, Deposit, rec.Kind)
		break
	}
	var n int
	for range seq {
		n++
	}
	assert.Equal(t, 2, n)

	// yield 出去的是拷貝
	recs := slices.Collect(seq)
	recs[0].Amount = d(999)
	dep, _ := a.History().Totals()
	assert.True(t, dep.Equal(d(5)))
}

// TestStatementEmpty 無交易時不產生對帳單。
func TestStatementEmpty(t *testing.T) {
	a := open(t, NewRegistry(), "Fabi")
	_, err := a.Statement()
	assert.ErrorIs(t, err, ErrEmptyHistory)
}

func TestStatement(t *testing.T) {
	a := open(t, NewRegistry(WithClock(fixedClock)), "Gabi")
	require.NoError(t, a.Deposit(d(100)))
	require.NoError(t, a.Withdraw(d(30)))

	st, err := a.Statement()
	require.NoError(t, err)
	assert.Equal(t, 1, st.AccountID)
	assert.Equal(t, "Gabi", st.Owner)
	assert.True(t, st.Balance.Equal(d(70)))
	require.Len(t, st.Records, 2)
	assert.Equal(t, Withdraw, st.Records[1].Kind)
}

// TestCompare 比較只看餘額。
func TestCompare(t *testing.T) {
	r := NewRegistry()
	a := open(t, r, "Hugo")
	b := open(t, r, "Iris")

	eq, err := a.Equal(b)
	require.NoError(t, err)
	assert.True(t, eq, "fresh accounts should compare equal")

	require.NoError(t, a.Deposit(d(10)))
	gt, err := a.Greater(b)
	require.NoError(t, err)
	assert.True(t, gt)
	lt, err := b.Less(a)
	require.NoError(t, err)
	assert.True(t, lt)

	c, err := a.CompareValue(b)
	require.NoError(t, err)
	assert.Equal(t, 1, c)
}

// TestCompareTypeMismatch 非 Account 的運算元回傳 ComparisonError。
func TestCompareTypeMismatch(t *testing.T) {
	a := open(t, NewRegistry(), "Juca")

	for _, v := range []any{42, "account", d(0), nil, (*Account)(nil)} {
		_, err := a.CompareValue(v)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTypeMismatch)
		var ce *ComparisonError
		require.True(t, errors.As(err, &ce), "value %v", v)
		assert.NotEmpty(t, ce.Operand)
	}

	_, err := a.Equal(nil)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.False(t, errors.Is(err, ErrInvalidAmount))
}

func TestNewClient(t *testing.T) {
	c, err := NewClient("  Ana ")
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Name())

	_, err = NewClient("   ")
	assert.ErrorIs(t, err, ErrEmptyName)
}
