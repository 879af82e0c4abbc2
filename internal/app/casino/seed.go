package casino

import (
	"context"

	"github.com/rs/zerolog/log"

	"code-casino/internal/store"
)

// SeedCatalog loads the starter challenges when the catalog is empty, so
// the fallback chain always has a final stage to land on.
func (s *Service) SeedCatalog(ctx context.Context) error {
	count, err := s.store.CountChallenges(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, c := range seedChallenges {
		if _, err := s.store.InsertChallenge(ctx, c); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(seedChallenges)).Msg("seeded challenge catalog")
	return nil
}

var seedChallenges = []store.Challenge{
	{
		TechStack:     "JavaScript",
		Title:         "Array iteration with async work",
		Description:   "Which loop actually waits for each request?",
		CodeSnippet1:  "items.forEach(async (item) => {\n  await save(item);\n});",
		CodeSnippet2:  "for (const item of items) {\n  await save(item);\n}",
		CorrectAnswer: 2,
		Explanation:   "forEach ignores the returned promises, so the callbacks race instead of running in order.",
		Difficulty:    "middle",
	},
	{
		TechStack:     "JavaScript",
		Title:         "Copying an object",
		Description:   "Which copy leaves the original untouched after edits?",
		CodeSnippet1:  "const copy = user;\ncopy.name = 'new';",
		CodeSnippet2:  "const copy = { ...user };\ncopy.name = 'new';",
		CorrectAnswer: 2,
		Explanation:   "Assignment copies the reference; both names point at the same object.",
		Difficulty:    "junior",
	},
	{
		TechStack:     "React",
		Title:         "Keys in a rendered list",
		Description:   "Which list keeps component state stable across reorders?",
		CodeSnippet1:  "{items.map((item, i) => (\n  <Row key={i} item={item} />\n))}",
		CodeSnippet2:  "{items.map((item) => (\n  <Row key={item.id} item={item} />\n))}",
		CorrectAnswer: 2,
		Explanation:   "Index keys get reassigned when the list reorders, so row state sticks to the wrong item.",
		Difficulty:    "junior",
	},
	{
		TechStack:     "Go",
		Title:         "Goroutines in a loop",
		Description:   "Which version prints every id once?",
		CodeSnippet1:  "for _, id := range ids {\n  go func() {\n    process(id)\n  }()\n}",
		CodeSnippet2:  "for _, id := range ids {\n  id := id\n  go func() {\n    process(id)\n  }()\n}",
		CorrectAnswer: 2,
		Explanation:   "Before Go 1.22 the loop variable is shared, so every goroutine can observe the final value.",
		Difficulty:    "middle",
	},
	{
		TechStack:     "Python",
		Title:         "Checking for a key",
		Description:   "Which lookup avoids the double hash?",
		CodeSnippet1:  "if key in d:\n    value = d[key]\nelse:\n    value = default",
		CodeSnippet2:  "value = d.get(key, default)",
		CorrectAnswer: 2,
		Explanation:   "get does the membership test and the read in one lookup.",
		Difficulty:    "junior",
	},
	{
		TechStack:     "Go",
		Title:         "Error wrapping",
		Description:   "Which error can the caller still match with errors.Is?",
		CodeSnippet1:  "return fmt.Errorf(\"open config: %v\", err)",
		CodeSnippet2:  "return fmt.Errorf(\"open config: %w\", err)",
		CorrectAnswer: 2,
		Explanation:   "%v flattens the chain to text; %w keeps the original error for errors.Is and errors.As.",
		Difficulty:    "senior",
	},
}
