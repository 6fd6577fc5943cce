package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"leadership-academy-go/internal/assistant"
	"leadership-academy-go/internal/insights"
	"leadership-academy-go/internal/notifications"
	"leadership-academy-go/internal/store"
)

type Server struct {
	port       int
	store      store.Store
	responder  *assistant.Responder
	insights   *insights.Service
	sender     *notifications.Sender
	validate   *validator.Validate
	httpServer *http.Server
}

func NewServer(port int, st store.Store, responder *assistant.Responder, insightsService *insights.Service, sender *notifications.Sender) *Server {
	return &Server{
		port:      port,
		store:     st,
		responder: responder,
		insights:  insightsService,
		sender:    sender,
		validate:  validator.New(),
	}
}

func (s *Server) routes() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.logRequests)

	router.HandleFunc("/courses", s.createCourse).Methods("POST")
	router.HandleFunc("/courses", s.listCourses).Methods("GET")
	router.HandleFunc("/courses/{id}", s.getCourse).Methods("GET")
	router.HandleFunc("/courses/{id}", s.updateCourse).Methods("PUT")
	router.HandleFunc("/courses/{id}", s.deleteCourse).Methods("DELETE")
	router.HandleFunc("/feedback", s.createFeedback).Methods("POST")
	router.HandleFunc("/feedback", s.listFeedback).Methods("GET")
	router.HandleFunc("/feedback/summary", s.feedbackSummary).Methods("GET")
	router.HandleFunc("/chat", s.chat).Methods("POST")
	router.HandleFunc("/suggestions", s.suggestions).Methods("GET")

	return router
}

func (s *Server) Run() error {
	address := "0.0.0.0"

	log.Printf("listening requests at %v:%v", address, s.port)

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%v:%v", address, s.port),
		Handler: s.routes(),
	}

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) createCourse(w http.ResponseWriter, r *http.Request) {
	var request CourseRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.validate.Struct(request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	course := s.store.AddCourse(courseFields(request))

	respondJSON(w, http.StatusCreated, course)
}

func (s *Server) listCourses(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.store.ListCourses())
}

func (s *Server) getCourse(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid course id", http.StatusBadRequest)
		return
	}

	course, ok := s.store.GetCourse(id)
	if !ok {
		http.Error(w, "course not found", http.StatusNotFound)
		return
	}

	respondJSON(w, http.StatusOK, course)
}

func (s *Server) updateCourse(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid course id", http.StatusBadRequest)
		return
	}

	var request CourseRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.validate.Struct(request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !s.store.UpdateCourse(id, courseFields(request)) {
		http.Error(w, "course not found", http.StatusNotFound)
		return
	}

	course, _ := s.store.GetCourse(id)
	respondJSON(w, http.StatusOK, course)
}

func (s *Server) deleteCourse(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid course id", http.StatusBadRequest)
		return
	}

	if !s.store.DeleteCourse(id) {
		http.Error(w, "course not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) createFeedback(w http.ResponseWriter, r *http.Request) {
	var request FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.validate.Struct(request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rating64, err := request.Rating.Int64()
	if err != nil {
		http.Error(w, "rating must be a whole number", http.StatusBadRequest)
		return
	}
	rating := int(rating64)
	if rating < 1 || rating > 5 {
		http.Error(w, "rating must be between 1 and 5", http.StatusBadRequest)
		return
	}

	entry := s.store.AddFeedback(store.FeedbackFields{
		Name:    request.Name,
		Email:   request.Email,
		Course:  request.Course,
		Rating:  rating,
		Comment: request.Comment,
	})

	// Best effort only; the submission already succeeded.
	if s.sender != nil {
		if err := s.sender.SendFeedbackThanks(entry.Name, entry.Email); err != nil {
			log.Errorf("sending feedback email: %v", err)
		}
	}

	respondJSON(w, http.StatusCreated, entry)
}

func (s *Server) listFeedback(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.store.ListFeedback())
}

func (s *Server) feedbackSummary(w http.ResponseWriter, r *http.Request) {
	summary := s.insights.SummarizeFeedback(r.Context())

	respondJSON(w, http.StatusOK, SummaryResponse{Summary: summary})
}

func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	var request ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	reply := s.responder.Respond(r.Context(), request.Message)

	respondJSON(w, http.StatusOK, ChatResponse{Reply: reply})
}

func (s *Server) suggestions(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	titles := s.insights.SuggestTitles(r.Context(), category)

	respondJSON(w, http.StatusOK, SuggestionsResponse{Suggestions: titles})
}

func courseFields(request CourseRequest) store.CourseFields {
	return store.CourseFields{
		Title:       request.Title,
		Description: request.Description,
		Duration:    request.Duration,
		Format:      request.Format,
		Price:       request.Price,
		Category:    request.Category,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Errorf("encoding response: %v", err)
	}
}
