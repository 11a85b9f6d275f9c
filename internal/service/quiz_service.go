package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	errorvalues "github.com/aaronparryphoto/til-demo/internal/error_values"
	"github.com/aaronparryphoto/til-demo/internal/quiz"
	"github.com/aaronparryphoto/til-demo/internal/repository"
	"github.com/aaronparryphoto/til-demo/pkg/entity"
)

type QuizService struct {
	questionsRepo repository.QuestionsRepositoryI
	attemptsRepo  repository.AttemptsRepositoryI
}

func NewQuizService(questionsRepo repository.QuestionsRepositoryI, attemptsRepo repository.AttemptsRepositoryI) *QuizService {
	if questionsRepo == nil || attemptsRepo == nil {
		log.Fatal("on quiz service provided nil repos")
	}
	return &QuizService{
		questionsRepo: questionsRepo,
		attemptsRepo:  attemptsRepo,
	}
}

// GetDailyQuiz picks the day's five questions, one per category in
// category order. Deterministic: repeated calls for the same date over
// an unchanged question pool return the identical five questions.
func (qs *QuizService) GetDailyQuiz(ctx context.Context, date string) ([]entity.Question, error) {
	if _, err := quiz.ParseDate(date); err != nil {
		return nil, err
	}
	selected := make([]entity.Question, 0, entity.QuestionsPerDay)
	for i, category := range entity.CategoryOrder {
		pool, err := qs.questionsRepo.GetActiveByCategory(ctx, category)
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		question, err := quiz.PickForCategory(date, i, pool)
		if err != nil {
			return nil, err
		}
		selected = append(selected, question)
	}
	return selected, nil
}

func (qs *QuizService) SubmitAttempt(ctx context.Context, userID uuid.UUID, req *SubmitAttemptRequest) (*entity.Attempt, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	day, err := quiz.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if day.After(time.Now().UTC()) {
		return nil, errorvalues.ErrFutureDate
	}

	// Evaluate against the day's selected questions, never against
	// whatever the client claims was asked.
	questions, err := qs.GetDailyQuiz(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(req.Answers))
	for _, submitted := range req.Answers {
		ids = append(ids, submitted.QuestionID)
	}
	known, err := qs.questionsRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if len(known) != len(ids) {
		return nil, errorvalues.ErrQuestionNotFound
	}
	answers := make([]entity.Answer, 0, len(req.Answers))
	for i, submitted := range req.Answers {
		if submitted.QuestionID != questions[i].ID {
			return nil, errorvalues.ErrAnswerMismatch
		}
		answers = append(answers, entity.Answer{
			QuestionID:    submitted.QuestionID,
			SelectedIndex: submitted.SelectedIndex,
			IsCorrect:     quiz.CheckAnswer(questions[i], submitted.SelectedIndex),
		})
	}

	attempt := &entity.Attempt{
		UserID:      userID,
		Date:        req.Date,
		Answers:     answers,
		Score:       quiz.Score(answers),
		CompletedAt: time.Now().UTC(),
		Breakdown:   quiz.CategoryBreakdown(answers, questions),
	}
	id, err := qs.attemptsRepo.Create(ctx, attempt)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAttemptExists) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	attempt.ID = id
	return attempt, nil
}

func (qs *QuizService) GetAttempt(ctx context.Context, userID uuid.UUID, date string) (*entity.Attempt, error) {
	if _, err := quiz.ParseDate(date); err != nil {
		return nil, err
	}
	attempt, err := qs.attemptsRepo.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAttemptNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return attempt, nil
}

func (qs *QuizService) HasCompletedToday(ctx context.Context, userID uuid.UUID) (bool, error) {
	exists, err := qs.attemptsRepo.Exists(ctx, userID, quiz.Today())
	if err != nil {
		return false, errors.New("repository error: " + err.Error())
	}
	return exists, nil
}

func (qs *QuizService) ShareText(ctx context.Context, userID uuid.UUID, date string) (string, error) {
	attempt, err := qs.GetAttempt(ctx, userID, date)
	if err != nil {
		return "", err
	}
	return quiz.ShareText(*attempt), nil
}
