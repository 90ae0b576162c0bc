package command

import (
	"context"
	"errors"
	"fmt"

	"hostelhub/database"
	"hostelhub/internal/microservices/http-api/repository"
	"hostelhub/internal/microservices/http-api/service"

	"github.com/spf13/cobra"
)

var recomputeHostel string

var recomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Recompute dish recommendations",
	Long: `Rebuild the recommendation table from dish scores and meal reviews.
With RECOMMENDATION_SCOPE=hostel the --hostel flag selects which hostel is rebuilt.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := openDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		recService := service.NewRecommendationService(
			repository.NewDishRepository(db),
			repository.NewMealReviewRepository(db),
			repository.NewRecommendationRepository(db),
			cfg.HostelScopedRecommendations(),
		)

		count, err := recompute(cmd.Context(), repository.NewHostelRepository(db), recService, recomputeHostel, cfg.HostelScopedRecommendations())
		if err != nil {
			return err
		}

		fmt.Printf("✓ Recomputed %d recommendations\n", count)
		return nil
	},
}

func recompute(ctx context.Context, hostels repository.HostelRepository, recService service.RecommendationService, hostelDomain string, hostelScoped bool) (int, error) {
	var hostelID string
	if hostelDomain != "" {
		hostel, err := hostels.FindByDomain(ctx, hostelDomain)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return 0, fmt.Errorf("hostel %q not found", hostelDomain)
			}
			return 0, fmt.Errorf("find hostel: %w", err)
		}
		hostelID = hostel.ID
	} else if hostelScoped {
		return 0, errors.New("--hostel is required when recommendations are hostel scoped")
	}

	count, err := recService.ComputeRecommendations(ctx, hostelID)
	if err != nil {
		return 0, fmt.Errorf("recompute recommendations: %w", err)
	}
	return count, nil
}

func init() {
	recomputeCmd.Flags().StringVar(&recomputeHostel, "hostel", "", "hostel domain")
}
