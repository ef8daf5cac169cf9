// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("https://api.example.com", time.Second)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.Equal(t, "https://api.example.com", client.BaseURL)
	assert.Equal(t, time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_ZeroTimeoutUnbounded(t *testing.T) {
	client := NewHTTPClient("https://api.example.com", 0)
	assert.Zero(t, client.GetClient().Timeout)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("https://a.example.com", 0)
	client2 := NewHTTPClient("https://a.example.com", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_SendsDefaultHeaders(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, time.Second).R().Get("/ping")
	require.NoError(t, err)
	assert.Equal(t, UserAgent, gotUA)
	assert.Equal(t, "application/json", gotAccept)
}
