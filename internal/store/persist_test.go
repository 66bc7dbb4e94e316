package store

import (
	"context"
	"encoding/json"
	"testing"

	"weldtrack-golang/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memKV — карта вместо настоящего бэкенда
type memKV struct {
	data map[string]string
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

func (m *memKV) Get(_ context.Context, key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return v, nil
}

func (m *memKV) Set(_ context.Context, key string, value string) error {
	m.data[key] = value
	return nil
}

// MockKV — для проверки, что стор вообще не пишет при отказе мутации
type MockKV struct {
	mock.Mock
}

func (m *MockKV) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockKV) Set(ctx context.Context, key string, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func TestPersist_WriteOnMutation(t *testing.T) {
	kv := newMemKV()
	s := New(kv, testLogger())

	require.True(t, s.AddRate("XT44", 1.5))

	raw, ok := kv.data[keyRates]
	require.True(t, ok, "снапшот ставок должен быть записан")

	var rates []storage.Rate
	require.NoError(t, json.Unmarshal([]byte(raw), &rates))
	require.Len(t, rates, 1)
	assert.Equal(t, "XT44", rates[0].Article)
}

func TestPersist_ReloadRoundTrip(t *testing.T) {
	kv := newMemKV()

	s := New(kv, testLogger())
	s.AddRate("XT44", 1.5)
	s.AddPlanItem("XT44", 10)
	s.AddWelder("Иванов")
	s.AddWCEntry(s.Welders()[0].ID, "XT44", 6, "2024-01-01")

	// новый стор поверх того же хранилища видит то же состояние
	s2 := New(kv, testLogger())
	assert.Equal(t, s.Rates(), s2.Rates())
	assert.Equal(t, s.PlanItems(), s2.PlanItems())
	assert.Equal(t, s.Welders(), s2.Welders())
}

func TestPersist_MigratesOldWelders(t *testing.T) {
	kv := newMemKV()
	// снапшот старой версии: без overtime и manualOvertimeOverrides
	kv.data[keyWelders] = `[{"id":"w1","lastName":"Иванов","entries":null}]`

	s := New(kv, testLogger())

	welders := s.Welders()
	require.Len(t, welders, 1)
	assert.NotNil(t, welders[0].Entries)
	assert.NotNil(t, welders[0].Overtime)
	assert.NotNil(t, welders[0].ManualOvertimeOverrides)
}

func TestPersist_CorruptSnapshotFallsBackToEmpty(t *testing.T) {
	kv := newMemKV()
	kv.data[keyRates] = `{мусор`
	kv.data[keyPlan] = `[{"id":"p1","article":"XT44","target":5}]`

	// старт не падает: битая коллекция пустая, остальные загружены
	s := New(kv, testLogger())

	assert.Empty(t, s.Rates())
	require.Len(t, s.PlanItems(), 1)
	assert.Equal(t, "XT44", s.PlanItems()[0].Article)
}

func TestPersist_NoWriteOnRejectedMutation(t *testing.T) {
	kv := new(MockKV)
	kv.On("Get", mock.Anything, mock.Anything).Return("", storage.ErrNotFound)
	kv.On("Set", mock.Anything, keyRates, mock.Anything).Return(nil).Once()

	s := New(kv, testLogger())

	require.True(t, s.AddRate("XT44", 1))
	// дубль отклоняется и записи в хранилище не делает
	require.False(t, s.AddRate("XT44", 2))

	kv.AssertNumberOfCalls(t, "Set", 1)
}

func TestPersist_NilKVMeansInMemory(t *testing.T) {
	s := New(nil, testLogger())

	assert.True(t, s.AddRate("XT44", 1))
	assert.Len(t, s.Rates(), 1)
}
