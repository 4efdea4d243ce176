package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/cache"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
)

// WebhookSetting is the assistant webhook configuration.
type WebhookSetting struct {
	URL    string `json:"url" example:"https://n8n.example.com/webhook/moneywise"`    // Stored URL of the webhook. Empty to use the built-in replies.
	Active string `json:"active" example:"https://n8n.example.com/webhook/moneywise"` // URL the assistant currently uses
}

type WebhookSettingResponse struct {
	Data  *WebhookSetting `json:"data"`                                                          // The webhook setting
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// RegisterSettingRoutes registers the routes for settings with
// the RouterGroup that is passed.
func (co Controller) RegisterSettingRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/webhook", co.OptionsWebhookSetting)
	r.GET("/webhook", co.GetWebhookSetting)
	r.PUT("/webhook", co.SetWebhookSetting)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings/webhook [options]
func (co Controller) OptionsWebhookSetting(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get webhook setting
// @Description	Returns the URL of the webhook used by the assistant
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	WebhookSettingResponse
// @Failure		500	{object}	WebhookSettingResponse
// @Router			/v1/settings/webhook [get]
func (co Controller) GetWebhookSetting(c *gin.Context) {
	url, err := cache.Load(c.Request.Context(), co.Cache, cache.Key(cache.Settings, models.SettingWebhookURL), func(context.Context) (string, error) {
		value, _, err := models.GetSetting(models.DB, models.SettingWebhookURL)
		return value, err
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WebhookSettingResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, WebhookSettingResponse{
		Data: &WebhookSetting{URL: url, Active: co.Webhook.URL()},
	})
}

// @Summary		Set webhook setting
// @Description	Stores the URL of the webhook used by the assistant. The assistant uses it immediately.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200		{object}	WebhookSettingResponse
// @Failure		400		{object}	WebhookSettingResponse
// @Failure		500		{object}	WebhookSettingResponse
// @Param			webhook	body		WebhookSetting	true	"Webhook"
// @Router			/v1/settings/webhook [put]
func (co Controller) SetWebhookSetting(c *gin.Context) {
	var data WebhookSetting
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WebhookSettingResponse{
			Error: &s,
		})
		return
	}

	setting, err := models.SetSetting(models.DB, models.SettingWebhookURL, data.URL)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WebhookSettingResponse{
			Error: &s,
		})
		return
	}

	co.Webhook.SetURL(setting.Value)
	co.Cache.Mutated(cache.EntitySetting)

	c.JSON(http.StatusOK, WebhookSettingResponse{
		Data: &WebhookSetting{URL: setting.Value, Active: co.Webhook.URL()},
	})
}
