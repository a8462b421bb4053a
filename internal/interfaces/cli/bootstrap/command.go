// Package bootstrap provides the CLI command that grants the first admin
// role. Role assignment over the API requires an existing admin, so a
// fresh deployment needs this one out-of-band grant.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	appaudit "stockward/internal/application/audit"
	userusecases "stockward/internal/application/user/usecases"
	"stockward/internal/infrastructure/config"
	"stockward/internal/infrastructure/database"
	"stockward/internal/infrastructure/repository"
	"stockward/internal/shared/authorization"
	"stockward/internal/shared/constants"
	"stockward/internal/shared/logger"
)

var (
	env         string
	principalID string
	roleName    string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Grant a role to a principal directly",
		Long:  `Grant a role to a principal without going through the API. Used to create the first admin on a fresh deployment.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&principalID, "principal", "", "Principal id (token subject) to grant the role to")
	cmd.Flags().StringVar(&roleName, "role", string(authorization.RoleAdmin), "Role to grant (admin, manager, viewer)")
	cmd.MarkFlagRequired("principal")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log := logger.NewLogger()
	roleRepo := repository.NewRoleAssignmentRepository(database.Get(), log)
	auditRepo := repository.NewAuditLogRepository(database.Get(), log)
	recorder := appaudit.NewRecorder(auditRepo, log)

	assignRoleUC := userusecases.NewAssignRoleUseCase(roleRepo, recorder, log)

	assignment, err := assignRoleUC.Execute(context.Background(), userusecases.AssignRoleCommand{
		ActorID:     constants.SystemActorID,
		PrincipalID: principalID,
		Role:        roleName,
	})
	if err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}

	logger.Info("role granted",
		"principal_id", assignment.PrincipalID,
		"role", assignment.Role)

	return nil
}
