package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"first": "alice"}

	n, err := WriteJSON(w, data, http.StatusOK)

	require.NoError(t, err)
	assert.NotZero(t, n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	expected, _ := json.Marshal(data)
	assert.JSONEq(t, string(expected), w.Body.String())
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteJSON_Slice(t *testing.T) {
	type card struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	w := httptest.NewRecorder()
	data := []card{{ID: "1", Name: "Mr. Bob Jones"}, {ID: "2", Name: "Ms. Alice Smith"}}

	_, err := WriteJSON(w, data, http.StatusOK)

	require.NoError(t, err)
	expected, _ := json.Marshal(data)
	assert.JSONEq(t, string(expected), w.Body.String())
}

func TestWriteJSON_NilData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, nil, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, "null", w.Body.String())
}

func TestWriteHTML(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteHTML(w, "<p>hi</p>", http.StatusAccepted)

	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "<p>hi</p>", w.Body.String())
}
