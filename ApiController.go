package main

import (
	"bytes"
	"errors"
	"github.com/cnuhqi5485/certification/contracts"
	"github.com/gin-gonic/gin"
	"net/http"
)

type ApiController struct {
	ChecklistRepository contracts.ChecklistRepository
	ResultExporter      contracts.ResultExporter
	VerdictOptions      []string
}

type ReviewerEndpointParams struct {
	Reviewer string `uri:"name" binding:"required"`
}

type SubmitEvaluationsRequest struct {
	Evaluations []contracts.Evaluation `json:"evaluations" binding:"required,dive"`
}

type AssignItemsRequest struct {
	Reviewer string   `json:"reviewer"`
	Ids      []string `json:"ids" binding:"required"`
}

type AssignByRuleRequest struct {
	Reviewer string `json:"reviewer"`
	Rule     string `json:"rule" binding:"required"`
}

type ExportQuery struct {
	Format string `form:"format"`
}

func NewApiController(
	checklistRepository contracts.ChecklistRepository, resultExporter contracts.ResultExporter, verdictOptions []string,
) *ApiController {
	return &ApiController{
		ChecklistRepository: checklistRepository,
		ResultExporter:      resultExporter,
		VerdictOptions:      verdictOptions,
	}
}

func (api *ApiController) OptionsAction(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"verdict_options": api.VerdictOptions})
}

func (api *ApiController) ReviewerItemsAction(c *gin.Context) {
	params := ReviewerEndpointParams{}
	var response []*contracts.ChecklistItem

	err := c.ShouldBindUri(&params)
	if err == nil {
		response, err = api.ChecklistRepository.ReviewerTasks(c.Request.Context(), params.Reviewer)
	}

	if err != nil {
		api.abortWithError(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) SubmitEvaluationsAction(c *gin.Context) {
	params := ReviewerEndpointParams{}
	request := SubmitEvaluationsRequest{}
	var response []*contracts.ChecklistItem

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	response, err = api.ChecklistRepository.SubmitEvaluations(c.Request.Context(), params.Reviewer, request.Evaluations)
	if err != nil {
		api.abortWithError(c, err)
	} else {
		c.JSON(http.StatusCreated, response)
	}
}

func (api *ApiController) ListItemsAction(c *gin.Context) {
	response, err := api.ChecklistRepository.ListItems(c.Request.Context())

	if err != nil {
		api.abortWithError(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

// AssignItemsAction accepts ids either as separate entries or comma separated
// in one entry, the way they are typed into the admin form.
func (api *ApiController) AssignItemsAction(c *gin.Context) {
	request := AssignItemsRequest{}

	err := c.ShouldBindJSON(&request)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	ids := make([]string, 0, len(request.Ids))
	for _, id := range request.Ids {
		ids = append(ids, SplitList(id)...)
	}

	response, err := api.ChecklistRepository.AssignItems(c.Request.Context(), request.Reviewer, ids)
	if err != nil {
		api.abortWithError(c, err)
	} else {
		c.JSON(http.StatusCreated, response)
	}
}

func (api *ApiController) AssignByRuleAction(c *gin.Context) {
	request := AssignByRuleRequest{}

	err := c.ShouldBindJSON(&request)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	response, err := api.ChecklistRepository.AssignByRule(c.Request.Context(), request.Reviewer, request.Rule)
	if err != nil {
		api.abortWithError(c, err)
	} else {
		c.JSON(http.StatusCreated, response)
	}
}

func (api *ApiController) SummaryAction(c *gin.Context) {
	response, err := api.ChecklistRepository.Summary(c.Request.Context())

	if err != nil {
		api.abortWithError(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) ExportAction(c *gin.Context) {
	query := ExportQuery{Format: ExportFormatCsv}
	_ = c.ShouldBindQuery(&query)

	fileName, err := api.ResultExporter.FileName(query.Format)
	var contentType string
	if err == nil {
		contentType, err = api.ResultExporter.ContentType(query.Format)
	}

	// buffered, so a failed export is still answered with a JSON error
	var buffer bytes.Buffer
	if err == nil {
		err = api.ChecklistRepository.Export(c.Request.Context(), query.Format, &buffer)
	}

	if err != nil {
		api.abortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, contentType, buffer.Bytes())
}

func (api *ApiController) abortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(errorHttpStatus(err), gin.H{"error": err.Error()})
}

func errorHttpStatus(err error) int {
	switch {
	case errors.Is(err, contracts.ReviewerNotFoundError), errors.Is(err, contracts.ItemNotFoundError):
		return http.StatusNotFound
	case errors.Is(err, contracts.ReviewerRequiredError),
		errors.Is(err, contracts.InvalidVerdictError),
		errors.Is(err, contracts.RowNotAssignedError),
		errors.Is(err, contracts.RuleError),
		errors.Is(err, contracts.UnknownExportFormatError):
		return http.StatusUnprocessableEntity
	case IsBackendError(err):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
