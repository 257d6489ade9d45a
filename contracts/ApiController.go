package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	OptionsAction(c *gin.Context)
	ReviewerItemsAction(c *gin.Context)
	SubmitEvaluationsAction(c *gin.Context)
	ListItemsAction(c *gin.Context)
	AssignItemsAction(c *gin.Context)
	AssignByRuleAction(c *gin.Context)
	SummaryAction(c *gin.Context)
	ExportAction(c *gin.Context)
}
