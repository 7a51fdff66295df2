package submit

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/initializ/enroll/internal/form"
	"github.com/initializ/enroll/internal/form/formtest"
	"github.com/initializ/enroll/internal/logging"
)

func TestEncode_SkipsFileFields(t *testing.T) {
	vals := Encode(formtest.Valid(), form.AllFields())

	want := url.Values{
		form.FirstName:        {"Ada"},
		form.LastName:         {"Lovelace"},
		form.Email:            {"ada@example.com"},
		form.Phone:            {"(555) 010-0199"},
		form.Country:          {"gb"},
		form.DOB:              {"1990-12-10"},
		form.Username:         {"ada_l"},
		form.Password:         {"engine1843"},
		form.ConfirmPassword:  {"engine1843"},
		form.SecurityQuestion: {"pet"},
		form.SecurityAnswer:   {"Puff"},
		form.Terms:            {"on"},
		form.Bio:              {formtest.ValidBio},
	}
	if diff := cmp.Diff(want, vals); diff != "" {
		t.Errorf("Encode() mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_KeepsEmptyFields(t *testing.T) {
	vals := Encode(form.NewValues(), []string{form.FirstName, form.Resume})
	assert.Equal(t, url.Values{form.FirstName: {""}}, vals)
}

func TestClient_Send_Success(t *testing.T) {
	var gotBody url.Values
	var gotType, gotID string
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		gotType = r.Header.Get("Content-Type")
		gotID = r.Header.Get("X-Request-Id")
		body, _ := io.ReadAll(r.Body)
		gotBody, _ = url.ParseQuery(string(body))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second, logging.Nop())
	err := c.Send(context.Background(), url.Values{"firstName": {"Ada Lovelace"}, "bio": {"a&b=c"}})
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, ContentType, gotType)
	assert.NotEmpty(t, gotID)
	assert.Equal(t, "Ada Lovelace", gotBody.Get("firstName"))
	assert.Equal(t, "a&b=c", gotBody.Get("bio"))
}

func TestClient_Send_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "duplicate username", http.StatusConflict)
	}))
	defer server.Close()

	err := NewClient(server.URL, time.Second, nil).Send(context.Background(), url.Values{})

	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, http.StatusConflict, rejected.StatusCode)
	assert.False(t, errors.Is(err, ErrTransport))
}

func TestClient_Send_RedirectFollowedToSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/register.jsp" {
			http.Redirect(w, r, "/welcome", http.StatusSeeOther)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := NewClient(server.URL+"/register.jsp", time.Second, nil).Send(context.Background(), url.Values{})
	assert.NoError(t, err)
}

func TestClient_Send_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	err := NewClient(endpoint, time.Second, nil).Send(context.Background(), url.Values{})
	assert.ErrorIs(t, err, ErrTransport)
}

func TestClient_Send_Cancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewClient(server.URL, 5*time.Second, nil).Send(ctx, url.Values{})
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrCancelled)
	case <-time.After(2 * time.Second):
		t.Fatal("Send did not return after cancel")
	}
}
