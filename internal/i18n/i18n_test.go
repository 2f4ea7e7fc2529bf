package i18n

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/drishya/internal/common"
	"github.com/dmitrijs2005/drishya/internal/kvstore"
	"github.com/dmitrijs2005/drishya/internal/logging"
)

func newService() (*Service, *kvstore.MemoryStore) {
	store := kvstore.NewMemoryStore()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewService(store, logger), store
}

func TestDefaultLanguage(t *testing.T) {
	s, _ := newService()
	assert.Equal(t, "en", s.Current())
	assert.Equal(t, "English", s.CurrentInfo().Name)
}

func TestSetLanguage(t *testing.T) {
	s, store := newService()
	ctx := context.Background()

	require.NoError(t, s.SetLanguage(ctx, "es"))
	assert.Equal(t, "es", s.Current())
	assert.Equal(t, "Español", s.CurrentInfo().NativeName)

	raw, err := store.Get(ctx, kvstore.KeyLanguage)
	require.NoError(t, err)
	assert.Equal(t, "es", string(raw))
}

func TestSetLanguage_Unsupported(t *testing.T) {
	s, _ := newService()
	err := s.SetLanguage(context.Background(), "tlh")
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, "en", s.Current())
}

func TestLoad_RestoresPersistedPreference(t *testing.T) {
	s, store := newService()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, kvstore.KeyLanguage, []byte("de")))

	require.NoError(t, s.Load(ctx))
	assert.Equal(t, "de", s.Current())
}

func TestLoad_IgnoresUnknownValue(t *testing.T) {
	s, store := newService()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, kvstore.KeyLanguage, []byte("xx")))

	require.NoError(t, s.Load(ctx))
	assert.Equal(t, "en", s.Current())
}

func TestT_FallbackChain(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()

	// translated key
	require.NoError(t, s.SetLanguage(ctx, "es"))
	assert.Equal(t, "Crear Video", s.T("nav.create_video"))

	// missing in es, falls back to English
	assert.Equal(t, "Sign In", s.T("auth.sign_in"))

	// unknown everywhere, key returned as-is
	assert.Equal(t, "nav.bogus", s.T("nav.bogus"))
}

func TestSupported(t *testing.T) {
	langs := Supported()
	assert.Len(t, langs, 12)
	assert.True(t, IsSupported("hi"))
	assert.False(t, IsSupported(""))
}
