// Package v1 implements the handlers of the v1 API.
package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/cache"
	"github.com/moneywise/backend/internal/config"
	"github.com/moneywise/backend/internal/webhook"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

const defaultPageSize = 10

// Controller holds the dependencies of all v1 handlers.
type Controller struct {
	Cache   *cache.Cache
	Webhook *webhook.Client
	Options Options
}

// Options are the handler settings from the configuration.
type Options struct {
	PageSize      int           // Page size of the cashflow list
	RetryAttempts int           // Additional attempts for failed cashflow reads
	RetryDelay    time.Duration // Delay between cashflow read attempts
	Language      language.Tag
	Currency      currency.Unit
	Now           func() time.Time // Clock, time.Now if not set
}

// New creates a controller from the configuration.
func New(cfg *config.Config, c *cache.Cache, w *webhook.Client) Controller {
	return Controller{
		Cache:   c,
		Webhook: w,
		Options: Options{
			PageSize:      cfg.Cashflows.PageSize,
			RetryAttempts: cfg.Cashflows.RetryAttempts,
			RetryDelay:    cfg.Cashflows.RetryDelay,
			Language:      cfg.Language(),
			Currency:      cfg.CurrencyUnit(),
		},
	}
}

func (co Controller) now() time.Time {
	if co.Options.Now != nil {
		return co.Options.Now()
	}
	return time.Now()
}

func (co Controller) pageSize() int {
	if co.Options.PageSize < 1 {
		return defaultPageSize
	}
	return co.Options.PageSize
}

// RegisterRoutes registers all v1 routes with the group.
func (co Controller) RegisterRoutes(r *gin.RouterGroup, version string) {
	{
		r.OPTIONS("", co.OptionsRoot)
		r.GET("", co.GetRoot)
		r.DELETE("", co.Cleanup)
	}

	co.RegisterTypeRoutes(r.Group("/types"))
	co.RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterAccountRoutes(r.Group("/accounts"))
	co.RegisterCashflowRoutes(r.Group("/cashflows"))
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterDebtRoutes(r.Group("/debts"))
	co.RegisterInvestmentRoutes(r.Group("/investments"))
	co.RegisterLiquidAssetRoutes(r.Group("/liquid-assets"))
	co.RegisterNetWorthRoutes(r.Group("/net-worth"))
	co.RegisterEmergencyFundRoutes(r.Group("/emergency-fund"))
	co.RegisterSettingRoutes(r.Group("/settings"))
	co.RegisterAssistantRoutes(r.Group("/assistant"))
	co.RegisterDashboardRoutes(r.Group("/dashboard"))
	co.RegisterExportRoutes(r.Group("/export"), version)
}
