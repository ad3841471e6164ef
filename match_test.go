package routa_test

import (
	"net/http"
	"testing"

	"github.com/routa-dev/routa"
	"github.com/stretchr/testify/require"
)

func TestMatchLiteral(t *testing.T) {
	m := routa.CompilePattern("/users/all", routa.MatchOptions{})

	params, ok, err := m("/users/all")
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, params)

	_, ok, err = m("/users/one")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMatchCaseInsensitiveByDefault(t *testing.T) {
	m := routa.CompilePattern("/Users", routa.MatchOptions{})

	_, ok, err := m("/users")
	require.NoError(t, err)
	require.True(t, ok)

	strict := routa.CompilePattern("/Users", routa.MatchOptions{CaseSensitive: true})
	_, ok, err = strict("/users")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMatchTrailingSlashOptional(t *testing.T) {
	m := routa.CompilePattern("/users", routa.MatchOptions{})

	for _, path := range []string{"/users", "/users/"} {
		_, ok, err := m(path)
		require.NoError(t, err)
		require.True(t, ok, path)
	}

	strict := routa.CompilePattern("/users", routa.MatchOptions{StrictSlash: true})
	_, ok, err := strict("/users/")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMatchNamedParam(t *testing.T) {
	m := routa.CompilePattern("/users/:id/posts/:post", routa.MatchOptions{})

	params, ok, err := m("/users/42/posts/7")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "42", params.Get("id"))
	require.Equal(t, "7", params.Get("post"))

	_, ok, err = m("/users/42/posts")
	require.NoError(t, err)
	require.False(t, ok, "missing segment must not match")

	_, ok, err = m("/users/42/posts/7/extra")
	require.NoError(t, err)
	require.False(t, ok, "anchored match must consume the whole path")
}

func TestMatchParamPercentDecoded(t *testing.T) {
	m := routa.CompilePattern("/users/:name", routa.MatchOptions{})

	params, ok, err := m("/users/J%C3%BCrgen")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Jürgen", params.Get("name"))
}

func TestMatchMalformedEscapeHardFails(t *testing.T) {
	m := routa.CompilePattern("/users/:name", routa.MatchOptions{})

	_, ok, err := m("/users/%zz")
	require.False(t, ok)
	require.Error(t, err)
	require.Equal(t, routa.CodeBadRequest, routa.CodeOf(err),
		"a broken escape is a 400, not a soft no-match")
	require.Equal(t, http.StatusBadRequest, int(routa.CodeOf(err)))
}

func TestMatchRepeatable(t *testing.T) {
	m := routa.CompilePattern("/files/:parts*", routa.MatchOptions{})

	params, ok, err := m("/files/a/b/c")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"a", "b", "c"}, params.Values("parts"))
}

func TestMatchRepeatableUnmatchedOmitted(t *testing.T) {
	m := routa.CompilePattern("/files/:parts*", routa.MatchOptions{})

	params, ok, err := m("/files")
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, params.Has("parts"), "unmatched capture is omitted, not empty")
}

func TestMatchRepeatableCustomDelimiter(t *testing.T) {
	m := routa.CompilePattern("/release/:version*", routa.MatchOptions{Delimiter: "."})

	params, ok, err := m("/release/1.2.3")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"1", "2", "3"}, params.Values("version"))
}

func TestMatchRepeatableMustBeLast(t *testing.T) {
	require.Panics(t, func() {
		routa.CompilePattern("/:parts*/trailing", routa.MatchOptions{})
	})
}

func TestMatchPrefix(t *testing.T) {
	m := routa.CompilePattern("/api", routa.MatchOptions{Prefix: true})

	for _, path := range []string{"/api", "/api/", "/api/v1/users"} {
		_, ok, err := m(path)
		require.NoError(t, err)
		require.True(t, ok, path)
	}

	_, ok, err := m("/apiv1")
	require.NoError(t, err)
	require.False(t, ok, "prefix matches whole segments only")
}

func TestMatchRootPattern(t *testing.T) {
	anchored := routa.CompilePattern("/", routa.MatchOptions{})

	_, ok, err := anchored("/")
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = anchored("/users")
	require.NoError(t, err)
	require.False(t, ok)

	prefix := routa.CompilePattern("/", routa.MatchOptions{Prefix: true})
	_, ok, err = prefix("/anything/at/all")
	require.NoError(t, err)
	require.True(t, ok)
}
