package api

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"

	"github.com/knaranjo357/icfes/internal/subjects"
)

// DefaultBaseURL is the production backend endpoint.
const DefaultBaseURL = "https://n8n.alliasoft.com/webhook/icfes"

// Client is the gateway to the remote ICFES backend. One method per remote
// capability; every failure is normalized into *Error.
type Client struct {
	http *resty.Client
}

// New creates a Client against baseURL. A zero timeout means resty's default.
func New(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &Client{http: c}
}

// req starts a request. ForceContentType makes resty decode SetResult even
// when the backend omits the JSON Content-Type header; without it a
// mislabeled response would silently decode nothing.
func (c *Client) req(ctx context.Context) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		ForceContentType("application/json")
}

func (p AnswerPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.QuestionID, p.Option})
}

func (p *AnswerPair) UnmarshalJSON(data []byte) error {
	var raw [2]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[0], &p.QuestionID); err != nil {
		return err
	}
	return json.Unmarshal(raw[1], &p.Option)
}

// Register creates a new account. The backend responds with a one-element
// array; the created user is returned.
func (c *Client) Register(ctx context.Context, email, password string) (*User, error) {
	var users []User
	resp, err := c.req(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&users).
		Post("/usuarios")
	if err != nil {
		return nil, connErr("error de conexion al registrar usuario", err)
	}
	if resp.IsError() {
		return nil, remoteErr("error al registrar usuario", resp.StatusCode())
	}
	if len(users) == 0 {
		return nil, connErr("respuesta vacia al registrar usuario", nil)
	}
	return &users[0], nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var logins []LoginResponse
	resp, err := c.req(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&logins).
		Post("/login")
	if err != nil {
		return nil, connErr("error de conexion al iniciar sesion", err)
	}
	if resp.IsError() {
		return nil, remoteErr("credenciales incorrectas", resp.StatusCode())
	}
	if len(logins) == 0 || logins[0].Token == "" {
		return nil, connErr("respuesta de login sin token", nil)
	}
	return &logins[0], nil
}

// QuickExam fetches the question set for a single-subject quick exam.
// The endpoint takes no body and no auth.
func (c *Client) QuickExam(ctx context.Context, subject string) ([]Question, error) {
	var questions []Question
	resp, err := c.req(ctx).
		SetQueryParam("materia", subject).
		SetResult(&questions).
		Post("/examen_rapido")
	if err != nil {
		return nil, connErr("error de conexion al obtener examen", err)
	}
	if resp.IsError() {
		return nil, remoteErr("error al obtener examen", resp.StatusCode())
	}
	return questions, nil
}

// FullExam assembles a mixed exam. There is no backend endpoint for this:
// the five per-subject quick-exam sets are fetched concurrently,
// concatenated, and uniformly shuffled. rand.Shuffle is a Fisher-Yates
// pass, so every permutation of the combined set is reachable.
func (c *Client) FullExam(ctx context.Context) ([]Question, error) {
	keys := subjects.All()
	sets := make([][]Question, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	for i, subject := range keys {
		g.Go(func() error {
			qs, err := c.QuickExam(gctx, subject)
			if err != nil {
				return err
			}
			sets[i] = qs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Question
	for _, qs := range sets {
		all = append(all, qs...)
	}
	rand.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})
	return all, nil
}

// SubmitAnswers submits a completed answer sheet. The pairs are sent in
// order; the caller is responsible for default-filling unanswered
// questions so every attempted question has an entry.
func (c *Client) SubmitAnswers(ctx context.Context, token string, answers []AnswerPair) error {
	resp, err := c.req(ctx).
		SetAuthToken(token).
		SetBody(map[string][]AnswerPair{"respuestas": answers}).
		Post("/respuestas")
	if err != nil {
		return connErr("error de conexion al enviar respuestas", err)
	}
	if resp.IsError() {
		return remoteErr("error al enviar respuestas", resp.StatusCode())
	}
	return nil
}

// Results fetches the caller's full exam-result history.
func (c *Client) Results(ctx context.Context, token string) ([]ExamResult, error) {
	var results []ExamResult
	resp, err := c.req(ctx).
		SetAuthToken(token).
		SetResult(&results).
		Get("/resultados")
	if err != nil {
		return nil, connErr("error de conexion al obtener resultados", err)
	}
	if resp.IsError() {
		return nil, remoteErr("error al obtener resultados", resp.StatusCode())
	}
	return results, nil
}

// DetailedResults fetches the per-question rows of one completed exam.
func (c *Client) DetailedResults(ctx context.Context, token string, examID int) ([]DetailedResult, error) {
	var details []DetailedResult
	resp, err := c.req(ctx).
		SetAuthToken(token).
		SetBody(map[string]int{"prueba_id": examID}).
		SetResult(&details).
		Post("/resultados_detalles")
	if err != nil {
		return nil, connErr("error de conexion al obtener resultados detallados", err)
	}
	if resp.IsError() {
		return nil, remoteErr("error al obtener resultados detallados", resp.StatusCode())
	}
	return details, nil
}
