package factory

import (
	"time"

	"github.com/mcoot/wordshop/internal/dependencies/mocks"
	"github.com/mcoot/wordshop/internal/storage"
	"github.com/mcoot/wordshop/internal/storage/memory"
	"github.com/mcoot/wordshop/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	Memory     *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	store := memory.New(mockClock, storage.DefaultSessionTTL)

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger(), "")

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		Memory:     store,
	}
}
