package api

// Wire types for the ICFES backend. Field names mirror the backend's JSON
// exactly; the backend schema is Spanish and is kept verbatim on the wire.

// User is the account record returned by registration.
type User struct {
	ID        int     `json:"id"`
	CreatedAt string  `json:"created_at"`
	Email     string  `json:"correo"`
	Password  string  `json:"contrasena,omitempty"`
	Name      *string `json:"nombre"`
	School    *string `json:"colegio"`
	Grade     *string `json:"grado"`
	Role      string  `json:"rol"`
}

// LoginResponse carries the bearer token issued on a successful login.
// The backend returns no profile data here; callers synthesize a local
// user record.
type LoginResponse struct {
	Token string `json:"token"`
}

// Question is a single exam question. Immutable once fetched.
type Question struct {
	ID            int     `json:"id"`
	CreatedAt     string  `json:"created_at"`
	ImageURL      *string `json:"img_url"`
	Passage       string  `json:"contenido"`
	Prompt        string  `json:"pregunta"`
	OptionA       string  `json:"opcionA"`
	OptionB       string  `json:"opcionB"`
	OptionC       string  `json:"opcionC"`
	OptionD       string  `json:"opcionD"`
	CorrectOption string  `json:"respuesta_correcta"`
	Explanation   string  `json:"justificacion"`
	Subject       string  `json:"materia"`
	Difficulty    int     `json:"dificultad"`
}

// ExamResult is one completed exam attempt as stored by the backend.
// Resultado is the score as a string; parsing is the caller's problem
// (see internal/results).
type ExamResult struct {
	ID        int     `json:"id"`
	CreatedAt string  `json:"created_at"`
	UserID    int     `json:"usuario"`
	Type      *string `json:"tipo"`
	Subject   string  `json:"materia"`
	Score     string  `json:"resultado"`
	TimeTaken *string `json:"tiempo"`
}

// DetailedResult is one answered question of a completed exam: the full
// question joined with the answer the user gave.
type DetailedResult struct {
	ID            int     `json:"id"`
	CreatedAt     string  `json:"created_at"`
	ImageURL      *string `json:"img_url"`
	Passage       string  `json:"contenido"`
	Prompt        string  `json:"pregunta"`
	OptionA       string  `json:"opcionA"`
	OptionB       string  `json:"opcionB"`
	OptionC       string  `json:"opcionC"`
	OptionD       string  `json:"opcionD"`
	CorrectOption string  `json:"respuesta_correcta"`
	Explanation   string  `json:"justificacion"`
	Subject       string  `json:"materia"`
	Difficulty    int     `json:"dificultad"`
	UserID        int     `json:"usuario"`
	UserAnswer    string  `json:"respuesta"`
	ExamID        int     `json:"prueba"`
}

// AnswerPair is one (questionID, chosenOption) entry of an answer sheet.
// It marshals as a two-element JSON array, which is what the backend
// expects under "respuestas".
type AnswerPair struct {
	QuestionID int
	Option     string
}
