package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/repository"
	"study_buddy_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var errProvider = errors.New("model provider unavailable")

type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) GenerateContent(prompt string) (string, error) {
	return s.text, s.err
}

// newTestRouter wires the real services and controllers over a temp sqlite
// database, with the model gateway replaced by a stub.
func newTestRouter(t *testing.T, gen service.TextGenerator) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.QuizHistory{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	users := repository.NewUserRepository(db)
	quiz := repository.NewQuizRepository(db)

	chatCtrl := NewChatController(service.NewChatService(gen))
	quizCtrl := NewQuizController(service.NewQuizService(gen, quiz))
	userCtrl := NewUserController(service.NewUserService(users, quiz))
	healthCtrl := NewHealthController()

	router := gin.New()
	router.GET("/", healthCtrl.Root)
	api := router.Group("/api")
	api.POST("/chat", chatCtrl.Chat)
	api.POST("/generate-quiz", quizCtrl.Generate)
	api.POST("/submit-quiz", quizCtrl.Submit)
	api.POST("/create-user", userCtrl.Create)
	api.GET("/user-stats/:user_id", userCtrl.Stats)

	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestRootMessage(t *testing.T) {
	router, _ := newTestRouter(t, &stubGenerator{})

	w := doJSON(t, router, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var body map[string]string
	decode(t, w, &body)
	if body["message"] != "AI Study Buddy API is running!" {
		t.Errorf("unexpected message %q", body["message"])
	}
}

func TestChatReturnsTextAndTimestamp(t *testing.T) {
	router, _ := newTestRouter(t, &stubGenerator{text: "Let's work through it step by step."})

	w := doJSON(t, router, http.MethodPost, "/api/chat", map[string]any{
		"message": "How do I solve 2x + 3 = 7?",
		"user_id": "u1",
		"subject": "Math",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Response  string `json:"response"`
		Timestamp string `json:"timestamp"`
	}
	decode(t, w, &body)
	if body.Response == "" {
		t.Error("empty response text")
	}
	if _, err := time.Parse(time.RFC3339, body.Timestamp); err != nil {
		t.Errorf("timestamp %q not parseable: %v", body.Timestamp, err)
	}
}

func TestChatGatewayFailure(t *testing.T) {
	router, _ := newTestRouter(t, &stubGenerator{err: errProvider})

	w := doJSON(t, router, http.MethodPost, "/api/chat", map[string]any{
		"message": "hello",
		"user_id": "u1",
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]string
	decode(t, w, &body)
	if body["detail"] == "" {
		t.Error("expected a detail field")
	}
}

func TestGenerateQuizFallback(t *testing.T) {
	router, _ := newTestRouter(t, &stubGenerator{text: "no quiz here"})

	w := doJSON(t, router, http.MethodPost, "/api/generate-quiz", map[string]any{
		"subject":       "Math",
		"topic":         "fractions",
		"difficulty":    "easy",
		"num_questions": 5,
		"user_id":       "u1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		QuizID    string               `json:"quiz_id"`
		Questions []model.QuizQuestion `json:"questions"`
		Subject   string               `json:"subject"`
	}
	decode(t, w, &body)
	if body.QuizID == "" {
		t.Error("missing quiz_id")
	}
	if len(body.Questions) != 1 || body.Questions[0].CorrectAnswer != "A" || len(body.Questions[0].Options) != 4 {
		t.Errorf("fallback question wrong: %+v", body.Questions)
	}
	if body.Subject != "Math" {
		t.Errorf("subject not echoed: %q", body.Subject)
	}
}

func TestSubmitQuizRoundTrip(t *testing.T) {
	router, db := newTestRouter(t, &stubGenerator{})

	w := doJSON(t, router, http.MethodPost, "/api/submit-quiz", map[string]any{
		"user_id": "u1",
		"quiz_id": "q1",
		"answers": []string{"A", "B", "C", "D"},
		"subject": "Math",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Score          int    `json:"score"`
		TotalQuestions int    `json:"total_questions"`
		Percentage     int    `json:"percentage"`
		Message        string `json:"message"`
		XPEarned       int    `json:"xp_earned"`
	}
	decode(t, w, &body)
	if body.Score < 60 || body.Score > 99 {
		t.Errorf("score out of range: %d", body.Score)
	}
	if body.TotalQuestions != 4 || body.Percentage != body.Score || body.XPEarned != body.Score/10 {
		t.Errorf("derived fields wrong: %+v", body)
	}

	var count int64
	db.Model(&model.QuizHistory{}).Count(&count)
	if count != 1 {
		t.Errorf("expected one history row, got %d", count)
	}
}

func TestCreateUserAndStats(t *testing.T) {
	router, _ := newTestRouter(t, &stubGenerator{})

	w := doJSON(t, router, http.MethodPost, "/api/create-user", map[string]any{
		"name":        "Ana",
		"subjects":    []string{"Math"},
		"grade_level": "9",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create status %d: %s", w.Code, w.Body.String())
	}
	var created map[string]string
	decode(t, w, &created)
	if created["user_id"] == "" || created["message"] != "User created successfully" {
		t.Fatalf("create response wrong: %v", created)
	}

	w = doJSON(t, router, http.MethodGet, "/api/user-stats/"+created["user_id"], nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats status %d: %s", w.Code, w.Body.String())
	}
	var stats struct {
		UserID       string              `json:"user_id"`
		Name         string              `json:"name"`
		Level        int                 `json:"level"`
		XP           int                 `json:"xp"`
		SubjectStats []model.SubjectStat `json:"subject_stats"`
	}
	decode(t, w, &stats)
	if stats.Name != "Ana" || stats.Level != 1 || stats.XP != 0 {
		t.Errorf("stats wrong: %+v", stats)
	}
	if stats.SubjectStats == nil || len(stats.SubjectStats) != 0 {
		t.Errorf("expected empty subject_stats, got %+v", stats.SubjectStats)
	}
}

func TestStatsUnknownUserIs404(t *testing.T) {
	router, _ := newTestRouter(t, &stubGenerator{})

	w := doJSON(t, router, http.MethodGet, "/api/user-stats/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]string
	decode(t, w, &body)
	if body["detail"] != "User not found" {
		t.Errorf("detail wrong: %v", body)
	}
}
