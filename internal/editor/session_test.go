package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomaskilian/Teacup-Firmware/internal/settings"
	"github.com/thomaskilian/Teacup-Firmware/internal/testutil"
)

// fakeStore records applied values and save calls.
type fakeStore struct {
	saveErr error
	values  settings.Values
	applied int
	saves   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: settings.Defaults()}
}

func (f *fakeStore) Snapshot() settings.Values { return f.values }

func (f *fakeStore) Apply(v settings.Values) {
	f.applied++
	f.values = v
}

func (f *fakeStore) Save(context.Context) error {
	f.saves++
	return f.saveErr
}

func answer(yes bool) ConfirmFunc {
	return func(string, string) bool { return yes }
}

func TestNewSessionIsClean(t *testing.T) {
	t.Parallel()

	session := New(newFakeStore())

	assert.Equal(t, StateClean, session.State())
	assert.False(t, session.Modified())
	assert.False(t, session.SaveEnabled())
	assert.Equal(t, "Exit", session.ExitLabel())
	assert.Equal(t, ResultPending, session.Result())
	assert.False(t, session.Closed())
}

func TestRowsFollowFieldOrder(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.values.Port = "COM7"
	session := New(store)

	rows := session.Rows()
	require.Len(t, rows, session.Len())
	for i, f := range settings.Fields() {
		assert.Equal(t, f.Key, rows[i].Key)
		assert.Equal(t, f.Label, rows[i].Label)
		assert.Equal(t, f.Help, rows[i].Help)
	}
	assert.Equal(t, "COM7", rows[5].Text)
	assert.Equal(t, "38400", rows[6].Text)
}

func TestEditMakesDirty(t *testing.T) {
	t.Parallel()

	session := New(newFakeStore())
	require.NoError(t, session.Edit(4, "arduino"))

	assert.Equal(t, StateDirty, session.State())
	assert.True(t, session.SaveEnabled())
	assert.Equal(t, "Cancel", session.ExitLabel())

	text, err := session.Text(4)
	require.NoError(t, err)
	assert.Equal(t, "arduino", text)
}

func TestEditWithSameTextStillDirty(t *testing.T) {
	t.Parallel()

	session := New(newFakeStore())
	require.NoError(t, session.Edit(5, "/dev/ttyACM0"))

	assert.True(t, session.Modified())
}

func TestEditOutOfRange(t *testing.T) {
	t.Parallel()

	session := New(newFakeStore())

	require.ErrorIs(t, session.Edit(-1, "x"), ErrOutOfRange)
	require.ErrorIs(t, session.Edit(session.Len(), "x"), ErrOutOfRange)
	_, err := session.Text(99)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.False(t, session.Modified(), "rejected edits do not dirty the session")
}

func TestSaveWhileCleanDoesNothing(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	session := New(store)

	result, err := session.Save(context.Background())

	require.ErrorIs(t, err, ErrNotModified)
	assert.Equal(t, ResultPending, result)
	assert.Equal(t, 0, store.applied)
	assert.Equal(t, 0, store.saves)
	assert.False(t, session.Closed())
}

func TestSaveCopiesRowsPositionally(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	session := New(store)

	for i, f := range settings.Fields() {
		require.NoError(t, session.Edit(i, "new-"+f.Key))
	}

	result, err := session.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ResultConfirmed, result)
	assert.True(t, session.Closed())
	assert.Equal(t, 1, store.saves)

	for _, f := range settings.Fields() {
		got, _ := store.values.Get(f.Key)
		assert.Equal(t, "new-"+f.Key, got)
	}
}

func TestSaveDoesNotValidate(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	session := New(store)
	require.NoError(t, session.Edit(6, "fast"))

	_, err := session.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fast", store.values.UploadSpeed)
}

func TestSaveErrorStillConfirmed(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.saveErr = errors.New("read-only folder")
	session := New(store)
	require.NoError(t, session.Edit(0, "/opt/arduino"))

	result, err := session.Save(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only folder")
	assert.Equal(t, ResultConfirmed, result)
	assert.Equal(t, "/opt/arduino", store.values.ArduinoDir)
}

func TestExitWhenClean(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	session := New(store)
	asked := false

	result := session.Exit(ConfirmFunc(func(string, string) bool {
		asked = true
		return false
	}))

	assert.Equal(t, ResultCancelled, result)
	assert.False(t, asked, "clean sessions close without asking")
	assert.True(t, session.Closed())
	assert.Equal(t, 0, store.applied)
}

func TestExitDirtyConfirmed(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	before := store.values
	session := New(store)
	require.NoError(t, session.Edit(1, "-O3"))

	var gotTitle, gotMessage string
	result := session.Exit(ConfirmFunc(func(title, message string) bool {
		gotTitle, gotMessage = title, message
		return true
	}))

	assert.Equal(t, ResultCancelled, result)
	assert.Equal(t, ConfirmTitle, gotTitle)
	assert.Contains(t, gotMessage, "will be lost")
	assert.Equal(t, before, store.values)
	assert.Equal(t, 0, store.applied)
	assert.Equal(t, 0, store.saves)
}

func TestExitDirtyDeclined(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	session := New(store)
	require.NoError(t, session.Edit(1, "-O3"))

	result := session.Exit(answer(false))

	assert.Equal(t, ResultPending, result)
	assert.False(t, session.Closed())
	assert.Equal(t, StateDirty, session.State())
	assert.True(t, session.SaveEnabled())

	result, err := session.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ResultConfirmed, result)
	assert.Equal(t, "-O3", store.values.CFlags)
}

func TestRequestExitTwoStep(t *testing.T) {
	t.Parallel()

	session := New(newFakeStore())
	require.NoError(t, session.Edit(2, "-lm"))

	result, needConfirm := session.RequestExit()
	assert.Equal(t, ResultPending, result)
	assert.True(t, needConfirm)

	assert.Equal(t, ResultPending, session.ConfirmExit(false))
	assert.Equal(t, ResultCancelled, session.ConfirmExit(true))
	assert.True(t, session.Closed())
}

func TestEventsAfterClose(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	session := New(store)
	require.NoError(t, session.Edit(3, "-O ihex"))
	_, err := session.Save(context.Background())
	require.NoError(t, err)

	require.ErrorIs(t, session.Edit(3, "again"), ErrClosed)
	_, err = session.Save(context.Background())
	require.ErrorIs(t, err, ErrClosed)
	assert.False(t, session.SaveEnabled())
	assert.Equal(t, ResultConfirmed, session.Exit(answer(true)))
	assert.Equal(t, 1, store.saves)
}

func TestCancelLeavesStoreAndDiskUntouched(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)
	fs := afero.NewMemMapFs()
	original := "[configtool]\nport = COM1\nuploadspeed = 57600\n"
	path := testutil.WriteFixture(t, fs, "/teacup", "configtool.ini", original)

	store := settings.Load(ctx, fs, "/teacup")
	before := store.Snapshot()

	session := New(store)
	for i := range session.Len() {
		require.NoError(t, session.Edit(i, "changed"))
	}
	assert.Equal(t, ResultCancelled, session.Exit(answer(true)))

	assert.Equal(t, before, store.Snapshot())
	assert.Equal(t, original, testutil.ReadFixture(t, fs, path))
}

func TestSaveThroughRealStore(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/teacup", 0o750))

	store := settings.Load(ctx, fs, "/teacup")
	session := New(store)
	require.NoError(t, session.Edit(7, "50"))

	_, err := session.Save(ctx)
	require.NoError(t, err)

	reloaded := settings.Load(ctx, fs, "/teacup")
	assert.Equal(t, "50", reloaded.Snapshot().NumTemps)
}

func TestStateAndResultStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "clean", StateClean.String())
	assert.Equal(t, "dirty", StateDirty.String())
	assert.Equal(t, "pending", ResultPending.String())
	assert.Equal(t, "confirmed", ResultConfirmed.String())
	assert.Equal(t, "cancelled", ResultCancelled.String())
}
