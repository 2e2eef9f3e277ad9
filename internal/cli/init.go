package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kochan17/taskdash/internal/domain"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database and seed default project settings",
	Long: `Creates the database, runs migrations, and seeds one settings row per
configured repository plus a 個人 row. Existing rows are left alone, so
re-running init never overwrites revenue or type edits.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	seeded, err := seedProjectSettings(app)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "初期設定が完了しました: %s\n", app.DB.Path())
	if seeded > 0 {
		fmt.Fprintf(out, "案件設定を %d 件作成しました\n", seeded)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "次のステップ:")
	fmt.Fprintln(out, "1. GITHUB_TOKEN を環境変数か .env.local に設定")
	fmt.Fprintln(out, "2. ~/.config/taskdash/config.yaml に repos を登録")
	fmt.Fprintln(out, "3. taskdash project set で報酬額を入力")
	fmt.Fprintln(out, "4. taskdash sync を実行")
	return nil
}

// seedProjectSettings creates the initial settings rows: one per configured
// repository (billing details to be filled in by hand) and a 個人 row.
// Projects that already have a row are skipped.
func seedProjectSettings(app *App) (int, error) {
	existing, err := app.Store.Settings.Map()
	if err != nil {
		return 0, err
	}

	defaults := make([]domain.ProjectSetting, 0, len(app.Config.Repos)+1)
	for _, repo := range app.Config.Repos {
		project := repo.Project
		if project == "" {
			project = repo.Name
		}
		defaults = append(defaults, domain.ProjectSetting{
			Project: project,
			Type:    domain.ProjectTypeContract,
			Note:    "案件ごとに報酬額を入力",
		})
	}
	defaults = append(defaults, domain.ProjectSetting{
		Project: "個人",
		Type:    domain.ProjectTypePersonal,
	})

	seeded := 0
	for _, setting := range defaults {
		if _, ok := existing[setting.Project]; ok {
			continue
		}
		if err := app.Store.Settings.Upsert(setting); err != nil {
			return seeded, err
		}
		existing[setting.Project] = setting
		seeded++
	}

	return seeded, nil
}
