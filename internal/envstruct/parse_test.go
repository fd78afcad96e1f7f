package envstruct_test

import (
	"testing"

	"github.com/myrjola/lightfingers/internal/envstruct"
	"github.com/stretchr/testify/require"
)

func TestPopulate(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		err := envstruct.Populate(nil, func(_ string) (string, bool) { return "", false })
		require.ErrorIs(t, err, envstruct.ErrInvalidValue)
	})

	t.Run("not pointer", func(t *testing.T) {
		err := envstruct.Populate(struct{}{}, func(_ string) (string, bool) { return "", false })
		require.ErrorIs(t, err, envstruct.ErrInvalidValue)
	})

	t.Run("empty struct", func(t *testing.T) {
		v := &struct{}{}
		err := envstruct.Populate(v, func(_ string) (string, bool) { return "", false })
		require.NoError(t, err)
	})

	t.Run("empty env", func(t *testing.T) {
		v := &struct {
			EnvVar string `env:"ENV_VAR"`
		}{}
		err := envstruct.Populate(v, func(_ string) (string, bool) { return "", false })
		require.ErrorIs(t, err, envstruct.ErrEnvNotSet)
	})

	t.Run("env is set", func(t *testing.T) {
		v := &struct {
			EnvVar string `env:"ENV_VAR"`
		}{}
		err := envstruct.Populate(v, func(_ string) (string, bool) { return "env_var", true })
		require.NoError(t, err)
		require.Equal(t, "env_var", v.EnvVar)
	})

	t.Run("default value", func(t *testing.T) {
		v := &struct {
			EnvVar string `env:"ENV_VAR" envDefault:"fallback"`
		}{}
		err := envstruct.Populate(v, func(_ string) (string, bool) { return "", false })
		require.NoError(t, err)
		require.Equal(t, "fallback", v.EnvVar)
	})

	t.Run("int field", func(t *testing.T) {
		v := &struct {
			Count int `env:"COUNT" envDefault:"3"`
		}{}
		err := envstruct.Populate(v, func(_ string) (string, bool) { return "7", true })
		require.NoError(t, err)
		require.Equal(t, 7, v.Count)
	})

	t.Run("int default", func(t *testing.T) {
		v := &struct {
			Count int `env:"COUNT" envDefault:"3"`
		}{}
		err := envstruct.Populate(v, func(_ string) (string, bool) { return "", false })
		require.NoError(t, err)
		require.Equal(t, 3, v.Count)
	})

	t.Run("invalid int", func(t *testing.T) {
		v := &struct {
			Count int `env:"COUNT"`
		}{}
		err := envstruct.Populate(v, func(_ string) (string, bool) { return "not-a-number", true })
		require.Error(t, err)
	})

	t.Run("unsupported field type", func(t *testing.T) {
		v := &struct {
			Flag bool `env:"FLAG"`
		}{}
		err := envstruct.Populate(v, func(_ string) (string, bool) { return "true", true })
		require.ErrorIs(t, err, envstruct.ErrInvalidValue)
	})
}
