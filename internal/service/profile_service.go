package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/samber/mo"
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/apiclient"
	"github.com/Freeeeeet/meeting_bot/internal/model"
)

type ProfileService struct {
	api    *apiclient.Client
	logger *zap.Logger
}

func NewProfileService(api *apiclient.Client, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		api:    api,
		logger: logger,
	}
}

// ListTeachers возвращает все профили учителей
func (s *ProfileService) ListTeachers(ctx context.Context, token string) ([]model.TeacherProfile, error) {
	var teachers []model.TeacherProfile
	if err := s.api.GetJSON(ctx, token, "/teachers", &teachers); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// ListStudents возвращает все профили студентов
func (s *ProfileService) ListStudents(ctx context.Context, token string) ([]model.StudentProfile, error) {
	var students []model.StudentProfile
	if err := s.api.GetJSON(ctx, token, "/students", &students); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// FindStudent ищет профиль студента по id пользователя.
// API не умеет фильтровать, поэтому линейный проход по списку.
// Отсутствие профиля — не ошибка, а None.
func (s *ProfileService) FindStudent(ctx context.Context, token, userID string) (mo.Option[model.StudentProfile], error) {
	students, err := s.ListStudents(ctx, token)
	if err != nil {
		return mo.None[model.StudentProfile](), err
	}

	for _, student := range students {
		if student.ID == userID {
			return mo.Some(student), nil
		}
	}

	return mo.None[model.StudentProfile](), nil
}

// FindTeacher ищет профиль учителя по id пользователя
func (s *ProfileService) FindTeacher(ctx context.Context, token, userID string) (mo.Option[model.TeacherProfile], error) {
	teachers, err := s.ListTeachers(ctx, token)
	if err != nil {
		return mo.None[model.TeacherProfile](), err
	}

	for _, teacher := range teachers {
		if teacher.ID == userID {
			return mo.Some(teacher), nil
		}
	}

	return mo.None[model.TeacherProfile](), nil
}

// HasProfile проверяет наличие профиля указанной роли
func (s *ProfileService) HasProfile(ctx context.Context, token, userID string, role model.Role) (bool, error) {
	if role == model.RoleTeacher {
		teacher, err := s.FindTeacher(ctx, token, userID)
		return teacher.IsPresent(), err
	}
	student, err := s.FindStudent(ctx, token, userID)
	return student.IsPresent(), err
}

// GetTeacher получает профиль учителя по id
func (s *ProfileService) GetTeacher(ctx context.Context, token, teacherID string) (*model.TeacherProfile, error) {
	var teacher model.TeacherProfile
	if err := s.api.GetJSON(ctx, token, "/teachers/"+teacherID, &teacher); err != nil {
		return nil, fmt.Errorf("get teacher %s: %w", teacherID, err)
	}
	return &teacher, nil
}

// GetStudent получает профиль студента по id
func (s *ProfileService) GetStudent(ctx context.Context, token, studentID string) (*model.StudentProfile, error) {
	var student model.StudentProfile
	if err := s.api.GetJSON(ctx, token, "/students/"+studentID, &student); err != nil {
		return nil, fmt.Errorf("get student %s: %w", studentID, err)
	}
	return &student, nil
}

// CreateStudent создаёт профиль студента
func (s *ProfileService) CreateStudent(ctx context.Context, token string, profile *model.StudentProfile) error {
	if err := validate.Struct(profile); err != nil {
		return fmt.Errorf("validate student profile: %w", err)
	}

	if err := s.api.SendJSON(ctx, token, http.MethodPost, "/students", profile, nil); err != nil {
		return fmt.Errorf("create student profile: %w", err)
	}

	s.logger.Info("Student profile created", zap.String("user_id", profile.ID))
	return nil
}

// CreateTeacher создаёт профиль учителя
func (s *ProfileService) CreateTeacher(ctx context.Context, token string, profile *model.TeacherProfile) error {
	if err := validate.Struct(profile); err != nil {
		return fmt.Errorf("validate teacher profile: %w", err)
	}

	if err := s.api.SendJSON(ctx, token, http.MethodPost, "/teachers", profile, nil); err != nil {
		return fmt.Errorf("create teacher profile: %w", err)
	}

	s.logger.Info("Teacher profile created", zap.String("user_id", profile.ID))
	return nil
}

// UpdateStudent полностью перезаписывает профиль студента
func (s *ProfileService) UpdateStudent(ctx context.Context, token string, profile *model.StudentProfile) error {
	if err := s.api.SendJSON(ctx, token, http.MethodPut, "/students/"+profile.ID, profile, nil); err != nil {
		return fmt.Errorf("update student profile: %w", err)
	}

	s.logger.Info("Student profile updated", zap.String("user_id", profile.ID))
	return nil
}

// UpdateTeacher полностью перезаписывает профиль учителя
func (s *ProfileService) UpdateTeacher(ctx context.Context, token string, profile *model.TeacherProfile) error {
	if err := s.api.SendJSON(ctx, token, http.MethodPut, "/teachers/"+profile.ID, profile, nil); err != nil {
		return fmt.Errorf("update teacher profile: %w", err)
	}

	s.logger.Info("Teacher profile updated", zap.String("user_id", profile.ID))
	return nil
}

// EnsureProfile лениво создаёт недостающий профиль при переключении роли.
// Возвращает true если профиль пришлось создать.
func (s *ProfileService) EnsureProfile(ctx context.Context, token, userID, name, email string, role model.Role) (bool, error) {
	exists, err := s.HasProfile(ctx, token, userID, role)
	if err != nil {
		return false, fmt.Errorf("check %s profile: %w", role, err)
	}
	if exists {
		return false, nil
	}

	// Заглушки по умолчанию, пользователь дозаполнит профиль позже
	if role == model.RoleTeacher {
		err = s.CreateTeacher(ctx, token, &model.TeacherProfile{
			ID:       userID,
			Name:     name,
			Email:    email,
			Subjects: []string{},
		})
	} else {
		err = s.CreateStudent(ctx, token, &model.StudentProfile{
			ID:       userID,
			Name:     name,
			Email:    email,
			Subjects: []string{},
		})
	}

	if err != nil {
		return false, fmt.Errorf("lazily create %s profile: %w", role, err)
	}

	s.logger.Info("Counterpart profile created on role switch",
		zap.String("user_id", userID),
		zap.String("role", string(role)),
	)

	return true, nil
}
