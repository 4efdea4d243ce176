package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/webhook"
)

// ChatMessage is a message to the assistant.
type ChatMessage struct {
	Message string `json:"message" binding:"required" example:"Bagaimana cara menabung lebih banyak?"` // The message
}

// ChatResponse is the reply of the assistant. Failures of the webhook
// are reported with the fallback source, never as error.
type ChatResponse struct {
	Reply  string         `json:"reply" example:"Coba sisihkan 20% dari gaji di awal bulan."` // Reply to the message
	Source webhook.Source `json:"source" example:"webhook" enums:"webhook,fallback,mock"`     // Where the reply came from
	Error  *string        `json:"error" example:"message is required"`                        // The error, if any occurred
}

type RecommendationsResponse struct {
	Data   []webhook.Recommendation `json:"data"`                                                // The recommendations
	Source webhook.Source           `json:"source" example:"mock" enums:"webhook,fallback,mock"` // Where the recommendations came from
}

type WebhookTestResponse struct {
	Data webhook.TestResult `json:"data"` // Result of the connection test
}

// RegisterAssistantRoutes registers the routes for the assistant with
// the RouterGroup that is passed.
func (co Controller) RegisterAssistantRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/chat", co.OptionsAssistantChat)
	r.POST("/chat", co.Chat)
	r.OPTIONS("/recommendations", co.OptionsAssistantRecommendations)
	r.GET("/recommendations", co.GetRecommendations)
	r.OPTIONS("/test", co.OptionsAssistantTest)
	r.POST("/test", co.TestWebhook)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Assistant
// @Success		204
// @Router			/v1/assistant/chat [options]
func (co Controller) OptionsAssistantChat(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Assistant
// @Success		204
// @Router			/v1/assistant/recommendations [options]
func (co Controller) OptionsAssistantRecommendations(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Assistant
// @Success		204
// @Router			/v1/assistant/test [options]
func (co Controller) OptionsAssistantTest(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Chat with the assistant
// @Description	Sends a message to the webhook. Without a webhook, a built-in reply is used.
// @Tags			Assistant
// @Accept			json
// @Produce		json
// @Success		200		{object}	ChatResponse
// @Failure		400		{object}	ChatResponse
// @Param			message	body		ChatMessage	true	"Message"
// @Router			/v1/assistant/chat [post]
func (co Controller) Chat(c *gin.Context) {
	var data ChatMessage
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ChatResponse{
			Error: &s,
		})
		return
	}

	reply := co.Webhook.Chat(c.Request.Context(), data.Message, co.now())
	c.JSON(http.StatusOK, ChatResponse{
		Reply:  reply.Reply,
		Source: reply.Source,
	})
}

// @Summary		Get recommendations
// @Description	Returns financial recommendations from the webhook. Without a webhook or when it fails, built-in recommendations are used.
// @Tags			Assistant
// @Produce		json
// @Success		200	{object}	RecommendationsResponse
// @Router			/v1/assistant/recommendations [get]
func (co Controller) GetRecommendations(c *gin.Context) {
	recommendations, source := co.Webhook.Recommendations(c.Request.Context(), co.now())
	c.JSON(http.StatusOK, RecommendationsResponse{
		Data:   recommendations,
		Source: source,
	})
}

// @Summary		Test webhook
// @Description	Sends a test message to the webhook and reports if it was accepted
// @Tags			Assistant
// @Produce		json
// @Success		200	{object}	WebhookTestResponse
// @Router			/v1/assistant/test [post]
func (co Controller) TestWebhook(c *gin.Context) {
	c.JSON(http.StatusOK, WebhookTestResponse{
		Data: co.Webhook.Test(c.Request.Context(), co.now()),
	})
}
