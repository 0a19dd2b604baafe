package config

import (
	aws_handler "advisory-server/src/utils/aws"
)

type managedSecrets struct {
	DBPassword   string `json:"db_password"`
	OpenAIAPIKey string `json:"openai_api_key"`
}

// ResolveSecrets overrides sensitive config values with the ones stored in
// AWS Secrets Manager. It is a no-op when no secret id is configured.
func (cfg *Config) ResolveSecrets() error {
	if cfg.AWS.SecretID == "" {
		return nil
	}

	handler, err := aws_handler.NewAWSHandler(cfg.AWS.Region)
	if err != nil {
		return err
	}

	var secrets managedSecrets
	if err := handler.SecretManager.GetSecretJSON(cfg.AWS.SecretID, &secrets); err != nil {
		return err
	}

	if secrets.DBPassword != "" {
		cfg.Databases.SQL.Password = secrets.DBPassword
	}
	if secrets.OpenAIAPIKey != "" {
		cfg.ExternalClients.OpenAI.APIKey = secrets.OpenAIAPIKey
	}
	return nil
}
