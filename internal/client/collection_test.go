package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pjoly/hr-console/internal/client"
	"github.com/pjoly/hr-console/internal/model"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestListAllReturnsServerOrder(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/applicants", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		writeJSON(w, http.StatusOK, `[
			{"id":2,"name":"Zoé","email":"zoe@x.com"},
			{"id":1,"name":"Alice Dupont","email":"alice@x.com"}
		]`)
	})

	col := client.Applicants(client.New(srv.URL))
	rows, err := col.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].ID)
	assert.Equal(t, "Alice Dupont", rows[1].Name)
}

func TestListAllNonArrayBodyIsEmpty(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"unexpected":"object"}`)
	})

	col := client.Applicants(client.New(srv.URL))
	rows, err := col.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
}

func TestListAllServerError(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{"message":"base indisponible"}`)
	})

	col := client.Employees(client.New(srv.URL))
	_, err := col.ListAll(context.Background())
	var se *client.ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.Status)
	assert.Equal(t, "base indisponible", se.Message)
	assert.Equal(t, "base indisponible", client.MessageFrom(err))
}

func TestGetByID(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/applicants/7", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"id":7,"name":"Alice Dupont","email":"alice@x.com","dateInterview":"2026-09-12"}`)
	})

	col := client.Applicants(client.New(srv.URL))
	rec, err := col.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, rec.ID)
	assert.Equal(t, "2026-09-12", rec.DateInterview)
}

func TestGetByIDAnyFailureIsNotFound(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{}`)
	})

	col := client.Applicants(client.New(srv.URL))
	_, err := col.GetByID(context.Background(), 12)
	assert.ErrorIs(t, err, client.ErrNotFound)
}

func TestCreateOmitsIDAndReturnsAssignedRecord(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/applicants", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.NotContains(t, payload, "id")
		assert.Equal(t, "Alice Dupont", payload["name"])

		writeJSON(w, http.StatusCreated, `{"id":1,"name":"Alice Dupont","email":"alice@x.com"}`)
	})

	col := client.Applicants(client.New(srv.URL))
	created, err := col.Create(context.Background(), model.Applicant{
		Name:  "Alice Dupont",
		Email: "alice@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestUpdateFullReplace(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/employees/3", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		// every field travels, even the blank ones: a replace, not a patch
		assert.Contains(t, payload, "poste")
		assert.Contains(t, payload, "salary")

		writeJSON(w, http.StatusOK, `{"id":3,"name":"Marc","email":"marc@x.com"}`)
	})

	col := client.Employees(client.New(srv.URL))
	updated, err := col.Update(context.Background(), 3, model.Employee{
		Name:  "Marc",
		Email: "marc@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.ID)
}

func TestDelete(t *testing.T) {
	deleted := false
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/applicants/5", r.URL.Path)
		deleted = true
		w.WriteHeader(http.StatusNoContent)
	})

	col := client.Applicants(client.New(srv.URL))
	require.NoError(t, col.Delete(context.Background(), 5))
	assert.True(t, deleted)
}

func TestDeleteMissingRecordFails(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"message":"introuvable"}`)
	})

	col := client.Applicants(client.New(srv.URL))
	err := col.Delete(context.Background(), 5)
	var se *client.ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.Status)
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	col := client.Applicants(client.New(url))
	_, err := col.ListAll(context.Background())
	var ne *client.NetworkError
	assert.ErrorAs(t, err, &ne)
}

func TestMessageFromPlainError(t *testing.T) {
	assert.Equal(t, "", client.MessageFrom(errors.New("boom")))
}
