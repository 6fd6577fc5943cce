package store

import (
	"sync"
	"time"

	"leadership-academy-go/internal/model"
)

// CourseFields holds the mutable fields of a course. The store owns ids and
// timestamps.
type CourseFields struct {
	Title       string
	Description string
	Duration    string
	Format      string
	Price       string
	Category    string
}

type FeedbackFields struct {
	Name    string
	Email   string
	Course  string
	Rating  int
	Comment string
}

type Store interface {
	AddCourse(fields CourseFields) model.Course
	GetCourse(id int) (model.Course, bool)
	ListCourses() []model.Course
	UpdateCourse(id int, fields CourseFields) bool
	DeleteCourse(id int) bool
	AddFeedback(fields FeedbackFields) model.Feedback
	ListFeedback() []model.Feedback
	RecentFeedback(n int) []model.Feedback
}

// memoryStore keeps all records for the lifetime of the process. A single
// lock is enough: the handlers run concurrently but every operation is a
// trivial map or slice touch.
type memoryStore struct {
	mu             sync.Mutex
	courses        map[int]model.Course
	courseOrder    []int
	feedback       []model.Feedback
	nextCourseID   int
	nextFeedbackID int
}

func New() Store {
	return &memoryStore{
		courses:        make(map[int]model.Course),
		nextCourseID:   1,
		nextFeedbackID: 1,
	}
}

func (s *memoryStore) AddCourse(fields CourseFields) model.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	course := model.Course{
		ID:          s.nextCourseID,
		Title:       fields.Title,
		Description: fields.Description,
		Duration:    fields.Duration,
		Format:      fields.Format,
		Price:       fields.Price,
		Category:    fields.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.courses[course.ID] = course
	s.courseOrder = append(s.courseOrder, course.ID)
	s.nextCourseID++

	return course
}

func (s *memoryStore) GetCourse(id int) (model.Course, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[id]
	return course, ok
}

// ListCourses returns courses in insertion order. The order slice keeps
// listing stable after deletions instead of leaning on map iteration.
func (s *memoryStore) ListCourses() []model.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	courses := make([]model.Course, 0, len(s.courseOrder))
	for _, id := range s.courseOrder {
		courses = append(courses, s.courses[id])
	}

	return courses
}

func (s *memoryStore) UpdateCourse(id int, fields CourseFields) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[id]
	if !ok {
		return false
	}

	course.Title = fields.Title
	course.Description = fields.Description
	course.Duration = fields.Duration
	course.Format = fields.Format
	course.Price = fields.Price
	course.Category = fields.Category
	course.UpdatedAt = time.Now()

	s.courses[id] = course
	return true
}

// DeleteCourse removes the record if present. The id counter is never
// rewound, so freed ids are not reused.
func (s *memoryStore) DeleteCourse(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[id]; !ok {
		return false
	}

	delete(s.courses, id)
	for i, orderedID := range s.courseOrder {
		if orderedID == id {
			s.courseOrder = append(s.courseOrder[:i], s.courseOrder[i+1:]...)
			break
		}
	}

	return true
}

func (s *memoryStore) AddFeedback(fields FeedbackFields) model.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := model.Feedback{
		ID:        s.nextFeedbackID,
		Name:      fields.Name,
		Email:     fields.Email,
		Course:    fields.Course,
		Rating:    fields.Rating,
		Comment:   fields.Comment,
		CreatedAt: time.Now(),
	}

	s.feedback = append(s.feedback, entry)
	s.nextFeedbackID++

	return entry
}

func (s *memoryStore) ListFeedback() []model.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()

	feedback := make([]model.Feedback, len(s.feedback))
	copy(feedback, s.feedback)

	return feedback
}

// RecentFeedback returns the last n entries in chronological order.
func (s *memoryStore) RecentFeedback(n int) []model.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := len(s.feedback) - n
	if start < 0 {
		start = 0
	}

	recent := make([]model.Feedback, len(s.feedback)-start)
	copy(recent, s.feedback[start:])

	return recent
}
