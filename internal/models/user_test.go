package models_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/twigs-app/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUserUsernameUnique() {
	err := models.DB.Create(&models.User{Username: "wbrawner"}).Error
	assert.Nil(suite.T(), err)

	err = models.DB.Create(&models.User{Username: " wbrawner "}).Error
	assert.ErrorIs(suite.T(), err, models.ErrUsernameNotUnique)
}

func (suite *TestSuiteStandard) TestUserUsernameEmpty() {
	err := models.DB.Create(&models.User{Username: "  "}).Error
	assert.ErrorIs(suite.T(), err, models.ErrUsernameEmpty)
}
