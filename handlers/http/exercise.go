package httpHandler

import (
	"encoding/json"
	"exercise-tracker/entities"
	"exercise-tracker/usecases"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ExerciseHandler struct {
	useCase *usecases.ExerciseUseCase
}

func NewExerciseHandler(useCase *usecases.ExerciseUseCase) *ExerciseHandler {
	return &ExerciseHandler{useCase: useCase}
}

// lenientString takes a JSON string or number. Duration stays textual so the
// use case can coerce it.
type lenientString string

func (s *lenientString) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = lenientString(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = lenientString(n.String())
	return nil
}

type addExerciseRequest struct {
	Description string        `form:"description" json:"description"`
	Duration    lenientString `form:"duration" json:"duration"`
	Date        string        `form:"date" json:"date"`
}

type exerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"`
}

type logQuery struct {
	From  string `form:"from"`
	To    string `form:"to"`
	Limit string `form:"limit"`
}

type logResponse struct {
	Username string              `json:"username"`
	Count    int                 `json:"count"`
	ID       string              `json:"_id"`
	Log      []entities.Exercise `json:"log"`
}

// AddExercise handles POST /api/users/:_id/exercises
// The returned _id is the user's id, not the entry's.
func (h *ExerciseHandler) AddExercise(c *gin.Context) {
	var req addExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, err, "Error adding exercise")
		return
	}

	res, err := h.useCase.AddExercise(c.Request.Context(), usecases.AddExerciseInput{
		UserID:      c.Param("_id"),
		Description: req.Description,
		Duration:    string(req.Duration),
		Date:        req.Date,
	})
	if err != nil {
		respondError(c, err, "Error adding exercise")
		return
	}

	c.JSON(http.StatusOK, exerciseResponse{
		Username:    res.User.Username,
		Description: res.Exercise.Description,
		Duration:    res.Exercise.Duration,
		Date:        res.Exercise.Date,
		ID:          res.User.ID,
	})
}

// GetLogs handles GET /api/users/:_id/logs?from=&to=&limit=
func (h *ExerciseHandler) GetLogs(c *gin.Context) {
	var q logQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, err, "Error retrieving logs")
		return
	}

	res, err := h.useCase.GetLogs(c.Request.Context(), usecases.LogQuery{
		UserID: c.Param("_id"),
		From:   q.From,
		To:     q.To,
		Limit:  q.Limit,
	})
	if err != nil {
		respondError(c, err, "Error retrieving logs")
		return
	}

	c.JSON(http.StatusOK, logResponse{
		Username: res.User.Username,
		Count:    len(res.Entries),
		ID:       res.User.ID,
		Log:      res.Entries,
	})
}
