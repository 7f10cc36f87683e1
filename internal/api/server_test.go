package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoySerhio507/Search-Filter/internal/api"
	"github.com/SoySerhio507/Search-Filter/internal/suggest"
)

func TestAPI(t *testing.T) {
	svc := suggest.NewService(zerolog.Nop())
	svc.Load([]string{"cat", "car", "cart", "dog"})

	server := api.NewServer(":0", svc, zerolog.Nop())
	testServer := httptest.NewServer(server.Handler())
	defer testServer.Close()

	t.Run("Health", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Status string `json:"status"`
			Words  int    `json:"words"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "ok", result.Status)
		assert.Equal(t, 4, result.Words)
	})

	t.Run("Suggestions", func(t *testing.T) {
		tests := []struct {
			prefix string
			want   []string
		}{
			{prefix: "ca", want: []string{"cat", "car", "cart"}},
			{prefix: "car", want: []string{"car", "cart"}},
			{prefix: "do", want: []string{"dog"}},
			{prefix: "z", want: []string{}},
			{prefix: "", want: []string{"cat", "car", "cart", "dog"}},
		}

		for _, tt := range tests {
			t.Run("prefix "+tt.prefix, func(t *testing.T) {
				resp, err := http.Get(fmt.Sprintf("%s/suggestions?prefix=%s", testServer.URL, tt.prefix))
				require.NoError(t, err)
				defer resp.Body.Close()

				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var result struct {
					Prefix      string   `json:"prefix"`
					Count       int      `json:"count"`
					Suggestions []string `json:"suggestions"`
				}
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
				assert.Equal(t, tt.prefix, result.Prefix)
				assert.Equal(t, len(tt.want), result.Count)
				assert.Equal(t, tt.want, result.Suggestions)
			})
		}
	})

	t.Run("List words", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/words")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Count int      `json:"count"`
			Words []string `json:"words"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, 4, result.Count)
		assert.Equal(t, []string{"cat", "car", "cart", "dog"}, result.Words)
	})

	t.Run("Add word", func(t *testing.T) {
		body, err := json.Marshal(map[string]string{"word": "door"})
		require.NoError(t, err)

		resp, err := http.Post(testServer.URL+"/words", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Contains(t, svc.Suggest("do"), "door")
	})

	t.Run("Add empty word rejected", func(t *testing.T) {
		body := []byte(`{"word": ""}`)

		resp, err := http.Post(testServer.URL+"/words", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Add malformed body rejected", func(t *testing.T) {
		resp, err := http.Post(testServer.URL+"/words", "application/json", bytes.NewReader([]byte("not json")))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestAPI_EmptyService(t *testing.T) {
	svc := suggest.NewService(zerolog.Nop())
	server := api.NewServer(":0", svc, zerolog.Nop())
	testServer := httptest.NewServer(server.Handler())
	defer testServer.Close()

	resp, err := http.Get(testServer.URL + "/suggestions?prefix=a")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Empty(t, result.Suggestions)
}
