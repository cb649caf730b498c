package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knaranjo357/icfes/internal/subjects"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL, 5*time.Second), srv
}

func TestLogin_UnwrapsArrayResponse(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.co", body["email"])
		assert.Equal(t, "secret", body["password"])

		fmt.Fprint(w, `[{"token":"tok-123"}]`)
	}))
	defer srv.Close()

	resp, err := c.Login(context.Background(), "a@b.co", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", resp.Token)
}

func TestLogin_RemoteRejectionCarriesStatus(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := c.Login(context.Background(), "a@b.co", "wrong")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.False(t, apiErr.IsNetwork())
}

func TestLogin_NetworkFailureHasNoStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // nobody listening anymore

	c := New(url, time.Second)
	_, err := c.Login(context.Background(), "a@b.co", "secret")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNetwork())
	assert.Zero(t, apiErr.Status)
}

func TestRegister_ReturnsFirstUser(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/usuarios", r.URL.Path)
		fmt.Fprint(w, `[{"id":7,"correo":"a@b.co","rol":"estudiante"}]`)
	}))
	defer srv.Close()

	u, err := c.Register(context.Background(), "a@b.co", "secret")
	require.NoError(t, err)
	assert.Equal(t, 7, u.ID)
	assert.Equal(t, "a@b.co", u.Email)
	assert.Equal(t, "estudiante", u.Role)
}

func TestQuickExam_SendsSubjectParam(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/examen_rapido", r.URL.Path)
		require.Equal(t, "lectura", r.URL.Query().Get("materia"))
		assert.Empty(t, r.Header.Get("Authorization"))

		fmt.Fprint(w, `[{"id":1,"pregunta":"¿...?","materia":"lectura","respuesta_correcta":"B"}]`)
	}))
	defer srv.Close()

	qs, err := c.QuickExam(context.Background(), "lectura")
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "B", qs[0].CorrectOption)
	assert.Equal(t, "lectura", qs[0].Subject)
}

func TestSubmitAnswers_PayloadShapeAndBearer(t *testing.T) {
	var captured struct {
		Respuestas []AnswerPair `json:"respuestas"`
	}
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/respuestas", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	answers := []AnswerPair{
		{QuestionID: 11, Option: "A"},
		{QuestionID: 12, Option: "C"},
	}
	require.NoError(t, c.SubmitAnswers(context.Background(), "tok-123", answers))
	assert.Equal(t, answers, captured.Respuestas)
}

func TestAnswerPair_MarshalsAsTuple(t *testing.T) {
	data, err := json.Marshal(AnswerPair{QuestionID: 42, Option: "D"})
	require.NoError(t, err)
	assert.JSONEq(t, `[42,"D"]`, string(data))
}

func TestResults_BearerAuth(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/resultados", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		fmt.Fprint(w, `[{"id":1,"materia":"ingles","resultado":"75"}]`)
	}))
	defer srv.Close()

	rs, err := c.Results(context.Background(), "tok-123")
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, "75", rs[0].Score)
}

func TestDetailedResults_SendsExamID(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/resultados_detalles", r.URL.Path)
		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, 99, body["prueba_id"])
		fmt.Fprint(w, `[{"id":1,"respuesta":"A","respuesta_correcta":"A","prueba":99}]`)
	}))
	defer srv.Close()

	ds, err := c.DetailedResults(context.Background(), "tok-123", 99)
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, 99, ds[0].ExamID)
}

func TestFullExam_AssemblesAllSubjects(t *testing.T) {
	const perSubject = 5
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject := r.URL.Query().Get("materia")
		require.True(t, subjects.Valid(subject), "unknown subject %q", subject)

		qs := make([]Question, perSubject)
		for i := range qs {
			qs[i] = Question{ID: len(subject)*100 + i, Subject: subject}
		}
		require.NoError(t, json.NewEncoder(w).Encode(qs))
	}))
	defer srv.Close()

	all, err := c.FullExam(context.Background())
	require.NoError(t, err)
	require.Len(t, all, perSubject*len(subjects.All()))

	counts := make(map[string]int)
	for _, q := range all {
		counts[q.Subject]++
	}
	for _, s := range subjects.All() {
		assert.Equal(t, perSubject, counts[s], "subject %s", s)
	}
}

func TestFullExam_FailsWhenAnySubjectFails(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("materia") == subjects.Reading {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `[{"id":1}]`)
	}))
	defer srv.Close()

	_, err := c.FullExam(context.Background())
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}

func TestQuickExam_DecodesWithoutJSONContentType(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, `[{"id":7,"materia":"lectura"}]`)
	}))
	defer srv.Close()

	qs, err := c.QuickExam(context.Background(), subjects.Reading)
	require.NoError(t, err)
	require.Len(t, qs, 1, "mislabeled response must still decode")
	assert.Equal(t, 7, qs[0].ID)
}

func TestFullExam_NotGroupedBySubject(t *testing.T) {
	const perSubject = 5
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject := r.URL.Query().Get("materia")
		qs := make([]Question, perSubject)
		for i := range qs {
			qs[i] = Question{ID: i, Subject: subject}
		}
		require.NoError(t, json.NewEncoder(w).Encode(qs))
	}))
	defer srv.Close()

	all, err := c.FullExam(context.Background())
	require.NoError(t, err)
	require.Len(t, all, perSubject*len(subjects.All()))

	// A shuffled 25-question set landing in five contiguous single-subject
	// blocks has probability ~1e-15; treat it as "not shuffled".
	grouped := true
	for block := 0; block < len(all); block += perSubject {
		for i := 1; i < perSubject; i++ {
			if all[block+i].Subject != all[block].Subject {
				grouped = false
			}
		}
	}
	assert.False(t, grouped, "full exam should interleave subjects")
}
