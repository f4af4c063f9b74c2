package services

import (
	"context"
	"mime/multipart"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/skillsphere/skillsphere/internal/app/models"
	"github.com/skillsphere/skillsphere/internal/app/repositories"
	"github.com/skillsphere/skillsphere/internal/db"
	"github.com/skillsphere/skillsphere/internal/pkg/apperrors"
)

// In-memory fakes backing the service tests. They reproduce the repository
// contracts (ownership scoping, sentinel errors, ordering) without a database.

type fakeTxRunner struct{}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	return fn(ctx, nil)
}

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	f.users[user.ID] = &clone
	return user.ID, nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.GetUserByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, userID int64, name, bio, avatarURL *string) error {
	user, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	if name != nil {
		user.Name = *name
	}
	if bio != nil {
		user.Bio = bio
	}
	if avatarURL != nil {
		user.AvatarURL = avatarURL
	}
	user.UpdatedAt = time.Now()
	return nil
}

type fakeCourseRepo struct {
	courses map[int64]*models.Course
	nextID  int64
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: map[int64]*models.Course{}, nextID: 1}
}

func (f *fakeCourseRepo) WithTx(tx pgx.Tx) repositories.ICourseRepository { return f }

func (f *fakeCourseRepo) Create(ctx context.Context, course *models.Course) (int64, error) {
	course.ID = f.nextID
	f.nextID++
	course.CreatedAt = time.Now()
	course.UpdatedAt = course.CreatedAt
	clone := *course
	f.courses[course.ID] = &clone
	return course.ID, nil
}

func (f *fakeCourseRepo) ListOwned(ctx context.Context, userID int64) ([]models.Course, error) {
	owned := []models.Course{}
	for _, course := range f.courses {
		if course.UserID == userID {
			owned = append(owned, *course)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].CreatedAt.After(owned[j].CreatedAt) })
	return owned, nil
}

func (f *fakeCourseRepo) GetOwnedByID(ctx context.Context, userID, courseID int64) (*models.Course, error) {
	course, ok := f.courses[courseID]
	if !ok || course.UserID != userID {
		return nil, apperrors.ErrCourseNotFound
	}
	clone := *course
	return &clone, nil
}

func (f *fakeCourseRepo) Update(ctx context.Context, userID, courseID int64, update repositories.CourseUpdate) error {
	course, ok := f.courses[courseID]
	if !ok || course.UserID != userID {
		return apperrors.ErrCourseNotFound
	}
	if update.Title != nil {
		course.Title = *update.Title
	}
	if update.Platform != nil {
		course.Platform = *update.Platform
	}
	if update.Category != nil {
		course.Category = *update.Category
	}
	if update.StartDate != nil {
		course.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		course.EndDate = *update.EndDate
	}
	if update.Status != nil {
		course.Status = *update.Status
	}
	if update.Progress != nil {
		course.Progress = *update.Progress
	}
	if update.HoursLearned != nil {
		course.HoursLearned = *update.HoursLearned
	}
	course.UpdatedAt = time.Now()
	return nil
}

func (f *fakeCourseRepo) Delete(ctx context.Context, userID, courseID int64) error {
	course, ok := f.courses[courseID]
	if !ok || course.UserID != userID {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, courseID)
	return nil
}

func (f *fakeCourseRepo) MarkCompleted(ctx context.Context, userID, courseID int64) error {
	course, ok := f.courses[courseID]
	if !ok || course.UserID != userID {
		return apperrors.ErrCourseNotFound
	}
	course.Status = models.StatusCompleted
	course.Progress = 100
	course.UpdatedAt = time.Now()
	return nil
}

func (f *fakeCourseRepo) ListOwnedDueBetween(ctx context.Context, userID int64, from, to time.Time) ([]models.Course, error) {
	due := []models.Course{}
	for _, course := range f.courses {
		if course.UserID != userID {
			continue
		}
		if course.Status != models.StatusNotStarted && course.Status != models.StatusInProgress {
			continue
		}
		if course.EndDate.Before(from) || course.EndDate.After(to) {
			continue
		}
		due = append(due, *course)
	}
	sort.Slice(due, func(i, j int) bool { return due[i].EndDate.Before(due[j].EndDate) })
	return due, nil
}

type fakeCertificateRepo struct {
	certificates map[int64]*models.Certificate
	courseOwner  map[int64]int64 // course id -> user id, for CountOwned
	nextID       int64
}

func newFakeCertificateRepo() *fakeCertificateRepo {
	return &fakeCertificateRepo{
		certificates: map[int64]*models.Certificate{},
		courseOwner:  map[int64]int64{},
		nextID:       1,
	}
}

func (f *fakeCertificateRepo) WithTx(tx pgx.Tx) repositories.ICertificateRepository { return f }

func (f *fakeCertificateRepo) Create(ctx context.Context, certificate *models.Certificate) (int64, error) {
	certificate.ID = f.nextID
	f.nextID++
	certificate.CreatedAt = time.Now()
	clone := *certificate
	f.certificates[certificate.ID] = &clone
	return certificate.ID, nil
}

func (f *fakeCertificateRepo) ListByCourseID(ctx context.Context, courseID int64) ([]models.Certificate, error) {
	grouped, _ := f.ListByCourseIDs(ctx, []int64{courseID})
	certificates := grouped[courseID]
	if certificates == nil {
		certificates = []models.Certificate{}
	}
	return certificates, nil
}

func (f *fakeCertificateRepo) ListByCourseIDs(ctx context.Context, courseIDs []int64) (map[int64][]models.Certificate, error) {
	grouped := map[int64][]models.Certificate{}
	for _, id := range courseIDs {
		for _, certificate := range f.certificates {
			if certificate.CourseID == id {
				grouped[id] = append(grouped[id], *certificate)
			}
		}
	}
	return grouped, nil
}

func (f *fakeCertificateRepo) CountOwned(ctx context.Context, userID int64) (int, error) {
	count := 0
	for _, certificate := range f.certificates {
		if f.courseOwner[certificate.CourseID] == userID {
			count++
		}
	}
	return count, nil
}

type fakeNotificationRepo struct {
	notifications []*models.Notification
	nextID        int64
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{nextID: 1}
}

func (f *fakeNotificationRepo) Create(ctx context.Context, notification *models.Notification) (int64, error) {
	notification.ID = f.nextID
	f.nextID++
	notification.CreatedAt = time.Now()
	clone := *notification
	f.notifications = append(f.notifications, &clone)
	return notification.ID, nil
}

func (f *fakeNotificationRepo) ListOwned(ctx context.Context, userID int64) ([]models.Notification, error) {
	owned := []models.Notification{}
	for i := len(f.notifications) - 1; i >= 0; i-- {
		if f.notifications[i].UserID == userID {
			owned = append(owned, *f.notifications[i])
		}
	}
	return owned, nil
}

func (f *fakeNotificationRepo) UnreadMessageExists(ctx context.Context, userID int64, fragment string) (bool, error) {
	for _, notification := range f.notifications {
		if notification.UserID == userID && !notification.IsRead && strings.Contains(notification.Message, fragment) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, userID, notificationID int64) error {
	for _, notification := range f.notifications {
		if notification.ID == notificationID && notification.UserID == userID {
			notification.IsRead = true
		}
	}
	return nil
}

type fakeFileStorage struct {
	saved []string
}

func (f *fakeFileStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	return f.SaveFileWithPath(fileHeader, "")
}

func (f *fakeFileStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}
	url := "/uploads/" + path + "/" + fileHeader.Filename
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeFileStorage) DeleteFile(filePath string) error { return nil }
