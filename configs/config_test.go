package configs_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/CaffeineGargoyle/configs"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestGetConfig_GetsNamedFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("postgres", config.DB.Driver)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
}

func (suite *ConfigTestSuite) TestGetConfig_GetsEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("CAFFEINEGARGOYLE_DB_DRIVER", "memory")
	suite.T().Setenv("CAFFEINEGARGOYLE_DB_HOST", "test.local")
	suite.T().Setenv("CAFFEINEGARGOYLE_DB_PORT", "1234")
	suite.T().Setenv("CAFFEINEGARGOYLE_DB_USER", "testuser")
	suite.T().Setenv("CAFFEINEGARGOYLE_DB_PASSWORD", "test123")
	suite.T().Setenv("CAFFEINEGARGOYLE_DB_DATABASE", "testdb")
	suite.T().Setenv("CAFFEINEGARGOYLE_DB_MAXIDLECONNECTIONS", "5")
	suite.T().Setenv("CAFFEINEGARGOYLE_DB_MAXOPENCONNECTIONS", "7")
	suite.T().Setenv("CAFFEINEGARGOYLE_SERVER_PORT", "666")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal("memory", config.DB.Driver)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
}

func (suite *ConfigTestSuite) TestGetConfig_EnvOverridesFile() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("CAFFEINEGARGOYLE_DB_HOST", "env.local")
	suite.T().Setenv("CAFFEINEGARGOYLE_DB_USER", "envuser")
	suite.T().Setenv("CAFFEINEGARGOYLE_DB_PASSWORD", "env123")

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("env.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("envuser", config.DB.User)
	suite.Equal("env123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingFileFallsBackToDefaults() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/missing.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("postgres", config.DB.Driver)
	suite.Equal("localhost", config.DB.Host)
}

func (suite *ConfigTestSuite) TestGetConfig_DefaultsWithoutFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal("postgres", config.DB.Driver)
	suite.Equal("localhost", config.DB.Host)
	suite.Equal(5432, config.DB.Port)
	suite.Equal(8080, config.Server.Port)
}
