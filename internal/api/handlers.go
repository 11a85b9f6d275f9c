package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"

	errorvalues "github.com/aaronparryphoto/til-demo/internal/error_values"
	"github.com/aaronparryphoto/til-demo/internal/quiz"
	"github.com/aaronparryphoto/til-demo/internal/service"
	"github.com/aaronparryphoto/til-demo/pkg/entity"
	"github.com/aaronparryphoto/til-demo/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type SubmitAnswerRequest struct {
	QuestionID    string `json:"question_id"`
	SelectedIndex int    `json:"selected_answer_index"`
}

type SubmitAttemptRequest struct {
	Date    string                `json:"date"`
	Answers []SubmitAnswerRequest `json:"answers"`
}

// DailyQuestion is the public view of a question: the correct answer
// index and the explanation stay server-side until the quiz is
// submitted.
type DailyQuestion struct {
	ID         string          `json:"id"`
	Category   entity.Category `json:"category"`
	Text       string          `json:"question_text"`
	Options    []string        `json:"options"`
	Difficulty string          `json:"difficulty,omitempty"`
}

type DailyQuizResponse struct {
	Date      string          `json:"date"`
	Questions []DailyQuestion `json:"questions"`
}

type TodayStatusResponse struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

type ShareTextResponse struct {
	ShareText string `json:"share_text"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name string `json:"name"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
			return
		}
		logger.Error("registering error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
			return
		}
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) GetDailyQuiz(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date := r.URL.Query().Get("date")
	if date == "" {
		date = quiz.Today()
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	questions, err := s.quizService.GetDailyQuiz(ctx, date)
	if err != nil {
		var emptyPool *errorvalues.EmptyCategoryPoolError
		switch {
		case errors.Is(err, errorvalues.ErrInvalidDate):
			logger.Error("daily quiz error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		case errors.As(err, &emptyPool):
			logger.Error("daily quiz error: empty category pool", slog.String("category", string(emptyPool.Category)))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "question content is misconfigured", nil)
		default:
			logger.Error("daily quiz error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while selecting daily quiz", nil)
		}
		return
	}
	resp := DailyQuizResponse{
		Date:      date,
		Questions: make([]DailyQuestion, 0, len(questions)),
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, DailyQuestion{
			ID:         q.ID,
			Category:   q.Category,
			Text:       q.Text,
			Options:    q.Options,
			Difficulty: q.Difficulty,
		})
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("daily quiz provided", slog.String("date", date))
}

func (s *Server) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("submit attempt error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SubmitAttemptRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("submit attempt error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	answers := make([]service.SubmitAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, service.SubmitAnswer{
			QuestionID:    a.QuestionID,
			SelectedIndex: a.SelectedIndex,
		})
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	attempt, err := s.quizService.SubmitAttempt(ctx, uid, &service.SubmitAttemptRequest{
		Date:    req.Date,
		Answers: answers,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAttemptExists):
			// Already played today: respond with the stored attempt,
			// the result is the same either way
			stored, getErr := s.quizService.GetAttempt(ctx, uid, req.Date)
			if getErr != nil {
				logger.Error("submit attempt error: rereading existing attempt failed", slog.String("error", getErr.Error()))
				httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while reading attempt", nil)
				return
			}
			logger.Info("attempt already recorded for date", slog.String("date", req.Date))
			httputil.WriteJSONResponse(w, http.StatusConflict, stored)
		case errors.Is(err, errorvalues.ErrInvalidDate), errors.Is(err, errorvalues.ErrFutureDate),
			errors.Is(err, errorvalues.ErrAnswerMismatch), errors.Is(err, errorvalues.ErrQuestionNotFound):
			logger.Error("submit attempt error: bad submission", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		default:
			logger.Error("submit attempt error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while submitting attempt", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, attempt)
	logger.Info("attempt recorded", slog.String("date", req.Date))
}

func (s *Server) GetAttempt(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get attempt error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date := chi.URLParam(r, "date")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	attempt, err := s.quizService.GetAttempt(ctx, uid, date)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidDate):
			logger.Error("get attempt error: invalid date in path value")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		case errors.Is(err, errorvalues.ErrAttemptNotFound):
			logger.Error("get attempt error: unexist attempt")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "attempt doesn't exist", nil)
		default:
			logger.Error("get attempt error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting attempt", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, attempt)
	logger.Info("attempt provided", slog.String("date", date))
}

func (s *Server) GetShareText(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("share text error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date := chi.URLParam(r, "date")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	text, err := s.quizService.ShareText(ctx, uid, date)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidDate):
			logger.Error("share text error: invalid date in path value")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		case errors.Is(err, errorvalues.ErrAttemptNotFound):
			logger.Error("share text error: unexist attempt")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "attempt doesn't exist", nil)
		default:
			logger.Error("share text error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building share text", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ShareTextResponse{ShareText: text})
	logger.Info("share text provided", slog.String("date", date))
}

func (s *Server) GetTodayStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("today status error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	completed, err := s.quizService.HasCompletedToday(ctx, uid)
	if err != nil {
		logger.Error("today status error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while checking today's status", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TodayStatusResponse{
		Date:      quiz.Today(),
		Completed: completed,
	})
	logger.Info("today status provided")
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpdateProfileRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update profile error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.UpdateProfile(ctx, uid, &service.UpdateProfileRequest{
		Name: req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserExists):
			logger.Error("update profile error: name taken")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("update profile error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("update profile error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating profile", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":  user.ID.String(),
		"name": user.Name,
	})
	logger.Info("profile updated")
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete account error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req DeleteAccountRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("delete account error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.userService.DeleteAccount(ctx, uid, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("delete account error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid password", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("delete account error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("delete account error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting account", nil)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	stats, err := s.statsService.GetUserStats(ctx, uid)
	if err != nil {
		logger.Error("get stats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while computing stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("stats provided")
}
