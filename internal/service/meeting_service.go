package service

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/apiclient"
	"github.com/Freeeeeet/meeting_bot/internal/model"
)

type MeetingService struct {
	api    *apiclient.Client
	logger *zap.Logger
}

func NewMeetingService(api *apiclient.Client, logger *zap.Logger) *MeetingService {
	return &MeetingService{
		api:    api,
		logger: logger,
	}
}

// ForUser возвращает встречи пользователя (и как студента, и как учителя)
func (s *MeetingService) ForUser(ctx context.Context, token, userID string) ([]model.Meeting, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is empty")
	}

	var meetings []model.Meeting
	if err := s.api.GetJSON(ctx, token, "/meetings/user/"+userID, &meetings); err != nil {
		return nil, fmt.Errorf("fetch meetings for user %s: %w", userID, err)
	}

	s.logger.Debug("Fetched meetings",
		zap.String("user_id", userID),
		zap.Int("count", len(meetings)),
	)

	return meetings, nil
}

// Request создаёт запрос встречи от студента к учителю
func (s *MeetingService) Request(ctx context.Context, token string, req *model.MeetingRequest) (*model.Meeting, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("validate meeting request: %w", err)
	}

	var meeting model.Meeting
	if err := s.api.SendJSON(ctx, token, http.MethodPost, "/meetings", req, &meeting); err != nil {
		return nil, fmt.Errorf("request meeting: %w", err)
	}

	s.logger.Info("Meeting requested",
		zap.String("teacher_id", req.TeacherID),
		zap.String("student_id", req.StudentID),
		zap.String("topic", req.Topic),
	)

	return &meeting, nil
}

// HandleAction переводит действие в статус и отправляет один PUT.
// Дашборд должен перечитать список, локально статус не меняется.
func (s *MeetingService) HandleAction(ctx context.Context, token, meetingID string, action model.MeetingAction) error {
	status, err := action.Status()
	if err != nil {
		return err
	}

	payload := map[string]model.MeetingStatus{"status": status}
	if err := s.api.SendJSON(ctx, token, http.MethodPut, "/meetings/"+meetingID, payload, nil); err != nil {
		return fmt.Errorf("update meeting %s status: %w", meetingID, err)
	}

	s.logger.Info("Meeting status updated",
		zap.String("meeting_id", meetingID),
		zap.String("status", string(status)),
	)

	return nil
}
