package rest

import (
	"time"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
	"github.com/bodyfuel/bodyfuel-backend/internal/service/journal"
	"github.com/bodyfuel/bodyfuel-backend/internal/service/recipe"
	"github.com/bodyfuel/bodyfuel-backend/internal/service/review"
)

type macrosResponse struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Carbohydrates float64 `json:"carbohydrates"`
}

type ingredientResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Quantity      string   `json:"quantity"`
	Calories      *float64 `json:"calories"`
	Protein       *float64 `json:"protein"`
	Fat           *float64 `json:"fat"`
	Carbohydrates *float64 `json:"carbohydrates"`
}

type instructionResponse struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
	Text     string `json:"text"`
}

type recipeResponse struct {
	ID           string                `json:"id"`
	UserID       string                `json:"user_id"`
	Name         string                `json:"name"`
	Slug         string                `json:"slug"`
	Description  string                `json:"description"`
	Image        *string               `json:"image"`
	Category     *string               `json:"category"`
	Servings     int                   `json:"servings"`
	Totals       macrosResponse        `json:"totals"`
	Difficulty   *string               `json:"difficulty"`
	PrepTime     *int                  `json:"prep_time"`
	CookTime     *int                  `json:"cook_time"`
	Shared       bool                  `json:"shared"`
	Ingredients  []ingredientResponse  `json:"ingredients,omitempty"`
	Instructions []instructionResponse `json:"instructions,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

type uploadResponse struct {
	URL       string    `json:"url"`
	Method    string    `json:"method"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}

type createRecipeResponse struct {
	Recipe recipeResponse `json:"recipe"`
	Upload uploadResponse `json:"upload"`
}

type recipeDetailsResponse struct {
	recipeResponse
	Author       string           `json:"author"`
	Reviews      []reviewResponse `json:"reviews"`
	AverageStars *float64         `json:"average_stars"`
}

type recipePageResponse struct {
	Recipes    []recipeResponse `json:"recipes"`
	NextCursor *string          `json:"next_cursor"`
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type reviewResponse struct {
	ID        string    `json:"id"`
	RecipeID  string    `json:"recipe_id"`
	UserID    string    `json:"user_id"`
	Stars     int       `json:"stars"`
	Comments  string    `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

type reviewsResponse struct {
	Reviews []reviewResponse `json:"reviews"`
	Average *float64         `json:"average"`
}

type favoriteResponse struct {
	ID        string    `json:"id"`
	RecipeID  string    `json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}

type recipeSummaryResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Slug  string  `json:"slug"`
	Image *string `json:"image"`
}

type mealItemResponse struct {
	ID        string                 `json:"id"`
	JournalID string                 `json:"journal_id"`
	RecipeID  string                 `json:"recipe_id"`
	Servings  float64                `json:"servings"`
	Calories  *float64               `json:"calories"`
	Protein   *float64               `json:"protein"`
	Carbs     *float64               `json:"carbs"`
	Fat       *float64               `json:"fat"`
	Recipe    *recipeSummaryResponse `json:"recipe"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

type journalResponse struct {
	ID     string             `json:"id"`
	Date   string             `json:"date"`
	Items  []mealItemResponse `json:"items"`
	Totals macrosResponse     `json:"totals"`
}

type macroStatResponse struct {
	Macro         string  `json:"macro"`
	Current       float64 `json:"current"`
	Reference     float64 `json:"reference"`
	PercentChange int     `json:"percent_change"`
	Direction     string  `json:"direction"`
	Favorable     bool    `json:"favorable"`
}

type dayStatsResponse struct {
	Date          string              `json:"date"`
	ReferenceDate string              `json:"reference_date"`
	Current       macrosResponse      `json:"current"`
	Reference     macrosResponse      `json:"reference"`
	Stats         []macroStatResponse `json:"stats"`
}

func toMacrosResponse(m domain.Macros) macrosResponse {
	return macrosResponse{
		Calories:      m.Calories,
		Protein:       m.Protein,
		Fat:           m.Fat,
		Carbohydrates: m.Carbohydrates,
	}
}

func toRecipeResponse(r *domain.Recipe) recipeResponse {
	resp := recipeResponse{
		ID:          r.ID.String(),
		UserID:      r.UserID.String(),
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Image:       r.Image,
		Category:    r.Category,
		Servings:    r.Servings,
		Totals:      toMacrosResponse(r.Totals),
		PrepTime:    r.PrepTime,
		CookTime:    r.CookTime,
		Shared:      r.Shared,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Difficulty != nil {
		d := r.Difficulty.String()
		resp.Difficulty = &d
	}
	for _, ing := range r.Ingredients {
		resp.Ingredients = append(resp.Ingredients, ingredientResponse{
			ID:            ing.ID.String(),
			Name:          ing.Name,
			Quantity:      ing.Quantity,
			Calories:      ing.Calories,
			Protein:       ing.Protein,
			Fat:           ing.Fat,
			Carbohydrates: ing.Carbohydrates,
		})
	}
	for _, step := range r.Instructions {
		resp.Instructions = append(resp.Instructions, instructionResponse{
			ID:       step.ID.String(),
			Position: step.Position,
			Text:     step.Text,
		})
	}
	return resp
}

func toRecipesResponse(recipes []domain.Recipe) []recipeResponse {
	out := make([]recipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, toRecipeResponse(&recipes[i]))
	}
	return out
}

func toRecipePageResponse(p *domain.RecipePage) recipePageResponse {
	return recipePageResponse{
		Recipes:    toRecipesResponse(p.Recipes),
		NextCursor: encodeCursor(p.NextCursor),
	}
}

func toCreateRecipeResponse(res *recipe.CreateResult) createRecipeResponse {
	return createRecipeResponse{
		Recipe: toRecipeResponse(res.Recipe),
		Upload: uploadResponse{
			URL:       res.Upload.URL,
			Method:    res.Upload.Method,
			Key:       res.Upload.Key,
			ExpiresAt: res.Upload.ExpiresAt,
		},
	}
}

func toRecipeDetailsResponse(d *recipe.RecipeDetails) recipeDetailsResponse {
	return recipeDetailsResponse{
		recipeResponse: toRecipeResponse(d.Recipe),
		Author:         d.AuthorName,
		Reviews:        toReviewsList(d.Reviews),
		AverageStars:   d.AverageStars,
	}
}

func toReviewResponse(r *domain.Review) reviewResponse {
	return reviewResponse{
		ID:        r.ID.String(),
		RecipeID:  r.RecipeID.String(),
		UserID:    r.UserID.String(),
		Stars:     r.Stars,
		Comments:  r.Comments,
		CreatedAt: r.CreatedAt,
	}
}

func toReviewsList(reviews []domain.Review) []reviewResponse {
	out := make([]reviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, toReviewResponse(&reviews[i]))
	}
	return out
}

func toReviewsResponse(r *review.Reviews) reviewsResponse {
	return reviewsResponse{Reviews: toReviewsList(r.Reviews), Average: r.Average}
}

func toFavoriteResponse(f *domain.FavoriteRecipe) favoriteResponse {
	return favoriteResponse{ID: f.ID.String(), RecipeID: f.RecipeID.String(), CreatedAt: f.CreatedAt}
}

func toMealItemResponse(item *domain.MealItem) mealItemResponse {
	resp := mealItemResponse{
		ID:        item.ID.String(),
		JournalID: item.MealJournalID.String(),
		RecipeID:  item.RecipeID.String(),
		Servings:  item.Servings,
		Calories:  item.Calories,
		Protein:   item.Protein,
		Carbs:     item.Carbs,
		Fat:       item.Fat,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
	if item.Recipe != nil {
		resp.Recipe = &recipeSummaryResponse{
			ID:    item.Recipe.ID.String(),
			Name:  item.Recipe.Name,
			Slug:  item.Recipe.Slug,
			Image: item.Recipe.Image,
		}
	}
	return resp
}

func toJournalResponse(j *domain.MealJournal) journalResponse {
	items := make([]mealItemResponse, 0, len(j.Items))
	var totals domain.Macros
	for i := range j.Items {
		items = append(items, toMealItemResponse(&j.Items[i]))
		totals = totals.Add(j.Items[i].Macros())
	}
	return journalResponse{
		ID:     j.ID.String(),
		Date:   j.Date.Format(time.DateOnly),
		Items:  items,
		Totals: toMacrosResponse(totals),
	}
}

func toJournalsResponse(journals []domain.MealJournal) []journalResponse {
	out := make([]journalResponse, 0, len(journals))
	for i := range journals {
		out = append(out, toJournalResponse(&journals[i]))
	}
	return out
}

func toDayStatsResponse(s *journal.DayStats) dayStatsResponse {
	stats := make([]macroStatResponse, 0, len(s.Stats))
	for _, st := range s.Stats {
		stats = append(stats, macroStatResponse{
			Macro:         st.Macro.String(),
			Current:       st.Current,
			Reference:     st.Reference,
			PercentChange: st.PercentChange,
			Direction:     string(st.Direction),
			Favorable:     st.Favorable,
		})
	}
	return dayStatsResponse{
		Date:          s.Date.Format(time.DateOnly),
		ReferenceDate: s.ReferenceDate.Format(time.DateOnly),
		Current:       toMacrosResponse(s.Current),
		Reference:     toMacrosResponse(s.Reference),
		Stats:         stats,
	}
}
