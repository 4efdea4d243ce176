package cache

type Entity string

const (
	EntityAccount       Entity = "account"
	EntityCashflow      Entity = "cashflow"
	EntityBudget        Entity = "budget"
	EntityDebt          Entity = "debt"
	EntityInvestment    Entity = "investment"
	EntityLiquidAsset   Entity = "liquid-asset"
	EntityNetWorth      Entity = "net-worth"
	EntityEmergencyFund Entity = "emergency-fund"
	EntitySetting       Entity = "setting"
	EntityAll           Entity = "all"
)

// Dependencies lists the key patterns that a mutation of an entity
// makes stale.
var Dependencies = map[Entity][]string{
	EntityAccount:       {Accounts + "*", LiquidAssets + "*", Cashflows + "*"},
	EntityCashflow:      {Cashflows + "*", Dashboard + "*"},
	EntityBudget:        {Budgets + "*", Dashboard + "*"},
	EntityDebt:          {Debts + "*", Dashboard + "*"},
	EntityInvestment:    {Investments + "*", Dashboard + "*"},
	EntityLiquidAsset:   {LiquidAssets + "*", Dashboard + "*"},
	EntityNetWorth:      {NetWorth + "*", Dashboard + "*"},
	EntityEmergencyFund: {EmergencyFund + "*", Dashboard + "*"},
	EntitySetting:       {Settings + "*"},
	EntityAll:           {"*"},
}

// Mutated drops every key that depends on the entity. It must only be
// called after the write succeeded.
func (c *Cache) Mutated(entity Entity) {
	c.Invalidate(Dependencies[entity]...)
}
