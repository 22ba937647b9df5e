package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jcleow/birding-express-swe1/internal/domain"
	"github.com/jcleow/birding-express-swe1/internal/service"
)

// SpeciesHandler serves the species catalog.
type SpeciesHandler struct {
	speciesService *service.SpeciesService
}

// NewSpeciesHandler creates a SpeciesHandler.
func NewSpeciesHandler(speciesService *service.SpeciesService) *SpeciesHandler {
	return &SpeciesHandler{speciesService: speciesService}
}

// SpeciesRequest binds the species creation form.
type SpeciesRequest struct {
	Name             string `form:"name" binding:"required"`
	ScientificName   string `form:"scientific_name"`
	FamilyName       string `form:"family_name"`
	OtherInformation string `form:"other_information"`
}

// CreateForm renders the species submission form.
func (h *SpeciesHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "species_form.html", withSession(c, gin.H{}))
}

// Create stores a new catalog entry and redirects home.
func (h *SpeciesHandler) Create(c *gin.Context) {
	var req SpeciesRequest
	if err := c.ShouldBind(&req); err != nil {
		logrus.WithError(err).Warn("Handler.CreateSpecies: invalid input")
		renderBadRequest(c, "Species name is required")
		return
	}

	err := h.speciesService.Create(c.Request.Context(), &domain.Species{
		Name:             req.Name,
		ScientificName:   req.ScientificName,
		FamilyName:       req.FamilyName,
		OtherInformation: req.OtherInformation,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// List renders the whole catalog.
func (h *SpeciesHandler) List(c *gin.Context) {
	catalog, err := h.speciesService.List(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "species_list.html", withSession(c, gin.H{"species": catalog}))
}

// View renders one catalog entry.
func (h *SpeciesHandler) View(c *gin.Context) {
	speciesID, ok := pathID(c, "id")
	if !ok {
		renderBadRequest(c, "Invalid species id")
		return
	}

	species, err := h.speciesService.Get(c.Request.Context(), speciesID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "species.html", withSession(c, gin.H{"species": species}))
}
