package suggest

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(zerolog.Nop())
}

func TestService_Load(t *testing.T) {
	svc := newTestService()

	accepted := svc.Load([]string{"cat", "car", "", "dog"})
	assert.Equal(t, 3, accepted, "empty entry must be skipped, not fatal")
	assert.Equal(t, 3, svc.Len())
	assert.False(t, svc.Empty())
}

func TestService_Suggest(t *testing.T) {
	svc := newTestService()
	svc.Load([]string{"cat", "car", "cart", "dog"})

	assert.Equal(t, []string{"cat", "car", "cart"}, svc.Suggest("ca"))
	assert.Equal(t, []string{"car", "cart"}, svc.Suggest("car"))
	assert.Empty(t, svc.Suggest("z"))
	assert.Equal(t, []string{"cat", "car", "cart", "dog"}, svc.Words())
}

func TestService_Add(t *testing.T) {
	svc := newTestService()

	require.NoError(t, svc.Add("dog"))
	assert.Error(t, svc.Add(""))
	assert.Equal(t, []string{"dog"}, svc.Words())
}

func TestService_EmptyService(t *testing.T) {
	svc := newTestService()

	assert.True(t, svc.Empty())
	assert.Zero(t, svc.Len())
	assert.Empty(t, svc.Suggest("anything"))
}
