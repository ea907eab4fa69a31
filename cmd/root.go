package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aaronfloresserna/assistantUACH/pkg/config"
	log "github.com/aaronfloresserna/assistantUACH/pkg/logger"
	"github.com/aaronfloresserna/assistantUACH/pkg/schema"
)

var logsLevel string

// RootCmd is the top-level luisamigo command.
var RootCmd = &cobra.Command{
	Use:   "luisamigo",
	Short: "Cliente de terminal para Luis Amigo, el asistente jurídico de la UACH",
	Long: `Luis Amigo es un asistente de estudio jurídico. Este cliente permite
hacer preguntas sobre leyes, artículos y conceptos jurídicos, filtradas por
materia y semestre, y muestra las respuestas con sus fuentes consultadas.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logsLevel, "logs-level", "",
		"Nivel de log de diagnóstico (debug, info, warn, error)")
}

// initRuntime loads the configuration and applies the diagnostic log level.
// The --logs-level flag overrides the configured level.
func initRuntime() (schema.Configuration, error) {
	cfg, err := config.Load()
	if err != nil {
		return schema.Configuration{}, err
	}

	level := cfg.Logs.Level
	if logsLevel != "" {
		level = logsLevel
	}
	if err := log.SetLevelString(level); err != nil {
		log.Warn("invalid log level, keeping the default", "level", level)
	}

	return cfg, nil
}
