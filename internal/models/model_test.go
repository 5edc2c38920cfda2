package models_test

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestModelGeneratesUUID() {
	user := suite.createTestUser(models.User{Username: "morre"})
	assert.NotEqual(suite.T(), uuid.Nil, user.ID)
}

func (suite *TestSuiteStandard) TestModelKeepsUUID() {
	id := uuid.New()
	user := suite.createTestUser(models.User{
		DefaultModel: models.DefaultModel{ID: id},
		Username:     "morre",
	})

	assert.Equal(suite.T(), id, user.ID)
}
