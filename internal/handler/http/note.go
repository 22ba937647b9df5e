package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jcleow/birding-express-swe1/internal/domain"
	"github.com/jcleow/birding-express-swe1/internal/middleware"
	"github.com/jcleow/birding-express-swe1/internal/service"
)

// dateLayout is the wire format of the date_seen form field.
const dateLayout = "2006-01-02"

// NoteHandler serves the sighting pages: list, detail, create, edit,
// delete and comments.
type NoteHandler struct {
	noteService *service.NoteService
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// List renders the front page with every sighting and its author.
func (h *NoteHandler) List(c *gin.Context) {
	sightings, err := h.noteService.List(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", withSession(c, gin.H{"sightings": sightings}))
}

// NewForm renders the creation form with the behaviour vocabulary.
func (h *NoteHandler) NewForm(c *gin.Context) {
	behaviours, err := h.noteService.BehaviourVocabulary(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "note_form.html", withSession(c, gin.H{"behaviours": behaviours}))
}

// NoteRequest binds the sighting form shared by create and edit.
type NoteRequest struct {
	SpeciesName   string `form:"species_name" binding:"required"`
	Habitat       string `form:"habitat"`
	DateSeen      string `form:"date_seen" binding:"required"`
	Appearance    string `form:"appearance"`
	Vocalizations string `form:"vocalizations"`
	// A flock size of 0 is a legal submission (a heard-only sighting);
	// only negative values are rejected.
	FlockSize int `form:"flock_size" binding:"min=0"`
}

// Create stores a new sighting for the logged-in user and redirects to
// its detail page.
func (h *NoteHandler) Create(c *gin.Context) {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		renderError(c, http.StatusForbidden, "You must be logged in to do that")
		return
	}

	note, behaviourIDs, ok := h.bindNoteForm(c, "behaviour")
	if !ok {
		return
	}
	note.UserID = userID

	created, err := h.noteService.Create(c.Request.Context(), note, behaviourIDs)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/note/"+strconv.FormatUint(uint64(created.ID), 10))
}

// View renders a single sighting with behaviours and comments.
func (h *NoteHandler) View(c *gin.Context) {
	noteID, ok := pathID(c, "id")
	if !ok {
		renderBadRequest(c, "Invalid sighting id")
		return
	}

	detail, err := h.noteService.Detail(c.Request.Context(), noteID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "note.html", withSession(c, gin.H{
		"note":       detail.Note,
		"behaviours": detail.Behaviours,
		"comments":   detail.Comments,
	}))
}

// behaviourOption is one vocabulary checkbox on the edit form, checked
// when the sighting already carries that behaviour.
type behaviourOption struct {
	ID      uint
	Name    string
	Checked bool
}

func behaviourOptions(vocabulary []domain.Behaviour, tagged []string) []behaviourOption {
	taggedSet := make(map[string]struct{}, len(tagged))
	for _, name := range tagged {
		taggedSet[name] = struct{}{}
	}
	options := make([]behaviourOption, 0, len(vocabulary))
	for _, behaviour := range vocabulary {
		_, checked := taggedSet[behaviour.Name]
		options = append(options, behaviourOption{ID: behaviour.ID, Name: behaviour.Name, Checked: checked})
	}
	return options
}

// EditForm renders the edit form with the current behaviours pre-checked.
// Owner only.
func (h *NoteHandler) EditForm(c *gin.Context) {
	noteID, ok := h.authorizeOwner(c)
	if !ok {
		return
	}

	detail, err := h.noteService.Detail(c.Request.Context(), noteID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	vocabulary, err := h.noteService.BehaviourVocabulary(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "note_edit.html", withSession(c, gin.H{
		"note":          detail.Note,
		"allBehaviours": behaviourOptions(vocabulary, detail.Behaviours),
		"dateSeenISO":   detail.Note.DateSeen.Format(dateLayout),
	}))
}

// Update overwrites the sighting and replaces its behaviour set. Owner
// only. The edit form posts the behaviour selection as behaviourNum.
func (h *NoteHandler) Update(c *gin.Context) {
	noteID, ok := h.authorizeOwner(c)
	if !ok {
		return
	}

	note, behaviourIDs, ok := h.bindNoteForm(c, "behaviourNum")
	if !ok {
		return
	}
	note.ID = noteID

	if err := h.noteService.Update(c.Request.Context(), note, behaviourIDs); err != nil {
		HandleServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/note/"+strconv.FormatUint(uint64(noteID), 10))
}

// Delete removes the sighting and everything hanging off it. Owner only.
func (h *NoteHandler) Delete(c *gin.Context) {
	noteID, ok := h.authorizeOwner(c)
	if !ok {
		return
	}

	if err := h.noteService.Delete(c.Request.Context(), noteID); err != nil {
		HandleServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Comment records a comment on the sighting for the logged-in user.
// An empty comment is silently skipped.
func (h *NoteHandler) Comment(c *gin.Context) {
	noteID, ok := pathID(c, "id")
	if !ok {
		renderBadRequest(c, "Invalid sighting id")
		return
	}
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		renderError(c, http.StatusForbidden, "You must be logged in to do that")
		return
	}

	if err := h.noteService.AddComment(c.Request.Context(), noteID, userID, c.PostForm("comment")); err != nil {
		HandleServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/note/"+strconv.FormatUint(uint64(noteID), 10))
}

// authorizeOwner resolves the :id parameter and enforces the owner check
// against the presented session digest.
func (h *NoteHandler) authorizeOwner(c *gin.Context) (uint, bool) {
	noteID, ok := pathID(c, "id")
	if !ok {
		renderBadRequest(c, "Invalid sighting id")
		return 0, false
	}

	digest, ok := middleware.SessionDigest(c)
	if !ok {
		renderError(c, http.StatusForbidden, "You are not allowed to do that")
		return 0, false
	}

	if err := h.noteService.AuthorizeOwner(c.Request.Context(), noteID, digest); err != nil {
		HandleServiceError(c, err)
		return 0, false
	}
	return noteID, true
}

// bindNoteForm validates the shared sighting fields and the variable
// behaviour selection, rejecting bad input before any query runs.
func (h *NoteHandler) bindNoteForm(c *gin.Context, behaviourField string) (*domain.Note, []uint, bool) {
	var req NoteRequest
	if err := c.ShouldBind(&req); err != nil {
		logrus.WithError(err).Warn("Handler: invalid sighting form")
		renderBadRequest(c, "Sighting fields are missing or malformed")
		return nil, nil, false
	}

	dateSeen, err := time.Parse(dateLayout, req.DateSeen)
	if err != nil {
		renderBadRequest(c, "date_seen must be a valid YYYY-MM-DD date")
		return nil, nil, false
	}

	behaviourIDs, err := parseBehaviourIDs(c.PostFormArray(behaviourField))
	if err != nil {
		renderBadRequest(c, "Behaviour selections must be numeric ids")
		return nil, nil, false
	}

	return &domain.Note{
		SpeciesName:   req.SpeciesName,
		Habitat:       req.Habitat,
		DateSeen:      dateSeen,
		Appearance:    req.Appearance,
		Vocalizations: req.Vocalizations,
		FlockSize:     req.FlockSize,
	}, behaviourIDs, true
}

func parseBehaviourIDs(raw []string) ([]uint, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	ids := make([]uint, 0, len(raw))
	for _, value := range raw {
		id, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
