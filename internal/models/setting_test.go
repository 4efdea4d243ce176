package models_test

import (
	"github.com/moneywise/backend/internal/models"
)

func (suite *TestSuiteStandard) TestSettings() {
	_, ok, err := models.GetSetting(models.DB, models.SettingWebhookURL)
	suite.Require().Nil(err)
	suite.Assert().False(ok)

	_, err = models.SetSetting(models.DB, models.SettingWebhookURL, " https://n8n.example.com/webhook/chat ")
	suite.Require().Nil(err)

	value, ok, err := models.GetSetting(models.DB, models.SettingWebhookURL)
	suite.Require().Nil(err)
	suite.Assert().True(ok)
	suite.Assert().Equal("https://n8n.example.com/webhook/chat", value)

	// Clearing keeps the key
	_, err = models.SetSetting(models.DB, models.SettingWebhookURL, "")
	suite.Require().Nil(err)

	value, ok, err = models.GetSetting(models.DB, models.SettingWebhookURL)
	suite.Require().Nil(err)
	suite.Assert().True(ok)
	suite.Assert().Equal("", value)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Setting{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestSettingKeyNotUnique() {
	suite.Require().Nil(models.DB.Create(&models.Setting{Key: "currency", Value: "IDR"}).Error)

	err := models.DB.Create(&models.Setting{Key: "currency", Value: "USD"}).Error
	suite.Assert().ErrorIs(err, models.ErrSettingKeyNotUnique)
}

func (suite *TestSuiteStandard) TestSettingKeyEmpty() {
	_, err := models.SetSetting(models.DB, " ", "value")
	suite.Assert().ErrorIs(err, models.ErrSettingKeyEmpty)
}
