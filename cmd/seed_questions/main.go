package main

import (
	"flag"
	"fmt"
	"os"

	"grammarlab/internal/config"
	"grammarlab/internal/database"
	"grammarlab/internal/domain"
	"grammarlab/internal/logger"
	"grammarlab/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	migrationsPath := flag.String("migrations", "migrations", "directory containing migration files")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting question bank seeding...")
	db, err := database.NewSQLXDB(cfg.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db, *migrationsPath); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}

	questionRepository := repository.NewQuestionDatabaseAdapter(db)

	existing, err := questionRepository.CountQuestions()
	if err != nil {
		log.Fatal("Failed to count questions", zap.Error(err))
	}
	if existing > 0 {
		log.Info("Question bank already seeded, nothing to do", zap.Int("count", existing))
		return
	}

	questions := builtinQuestions()
	var g errgroup.Group
	g.SetLimit(4)
	for _, q := range questions {
		q := q
		g.Go(func() error {
			if err := q.Validate(); err != nil {
				return fmt.Errorf("invalid seed question %q: %w", q.Prompt, err)
			}
			return questionRepository.SaveQuestion(q)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
	log.Info("Question bank seeded", zap.Int("questions", len(questions)))
}

// builtinQuestions is a starter set covering every exercise variant.
func builtinQuestions() []*domain.Question {
	var questions []*domain.Question

	q := domain.NewQuestion("", domain.QuestionMultipleChoice, "Which verb form completes the sentence: 'She ___ to school every day.'")
	q.MultipleChoice = &domain.MultipleChoicePayload{
		Options:       []string{"go", "goes", "going", "gone"},
		CorrectOption: "goes",
	}
	q.Hints = []string{"The subject is third person singular.", "Present simple verbs take -s with he, she and it."}
	q.Explanation = "With a third person singular subject, present simple verbs take an -s ending."
	q.Difficulty = 1
	questions = append(questions, q)

	q = domain.NewQuestion("", domain.QuestionMultipleChoice, "Pick the correct article: '___ apple a day keeps the doctor away.'")
	q.MultipleChoice = &domain.MultipleChoicePayload{
		Options:       []string{"A", "An", "The"},
		CorrectOption: "An",
	}
	q.Hints = []string{"Listen to the first sound of the next word."}
	q.Explanation = "'An' is used before a vowel sound."
	q.Difficulty = 1
	questions = append(questions, q)

	q = domain.NewQuestion("", domain.QuestionFillInBlank, "Complete the sentence with the past tense.")
	q.FillInBlank = &domain.FillInBlankPayload{
		Template: "Yesterday we ___ to the market and ___ fresh bread.",
		Blanks: []domain.Blank{
			{AcceptedAnswers: []string{"went"}},
			{AcceptedAnswers: []string{"bought"}},
		},
	}
	q.Hints = []string{"Both verbs are irregular.", "'Go' and 'buy' do not take -ed."}
	q.Explanation = "'Go' becomes 'went' and 'buy' becomes 'bought' in the past simple."
	q.Difficulty = 2
	questions = append(questions, q)

	q = domain.NewQuestion("", domain.QuestionFillInBlank, "Fill in the plural forms.")
	q.FillInBlank = &domain.FillInBlankPayload{
		Template: "Two ___ and three ___ crossed the road.",
		Blanks: []domain.Blank{
			{AcceptedAnswers: []string{"children", "kids"}},
			{AcceptedAnswers: []string{"geese"}},
		},
	}
	q.Hints = []string{"Both nouns have irregular plurals."}
	q.Explanation = "'Child' and 'goose' have the irregular plurals 'children' and 'geese'."
	q.Difficulty = 2
	questions = append(questions, q)

	q = domain.NewQuestion("", domain.QuestionDragAndDrop, "Sort the words into nouns and verbs.")
	q.DragAndDrop = &domain.DragAndDropPayload{
		Categories: []string{"noun", "verb"},
		Placement: map[string]string{
			"apple": "noun",
			"run":   "verb",
			"city":  "noun",
			"sing":  "verb",
		},
	}
	q.Hints = []string{"A noun names a thing, a verb names an action."}
	q.Difficulty = 1
	questions = append(questions, q)

	q = domain.NewQuestion("", domain.QuestionSentenceBuilder, "Arrange the words into a correct sentence.")
	q.SentenceBuilder = &domain.SentenceBuilderPayload{
		Words: []string{"she", "always", "drinks", "coffee", "in", "the", "morning"},
	}
	q.Hints = []string{"Adverbs of frequency go before the main verb."}
	q.Explanation = "Frequency adverbs like 'always' sit between the subject and the main verb."
	q.Difficulty = 3
	questions = append(questions, q)

	q = domain.NewQuestion("", domain.QuestionEssay, "Write a few sentences about your last weekend. Use the past tense.")
	q.Essay = &domain.EssayPayload{
		KeyPoints: []string{"weekend"},
		MinWords:  20,
	}
	q.Hints = []string{"Start with what you did on Saturday morning.", "Regular past tense verbs end in -ed."}
	q.Difficulty = 3
	questions = append(questions, q)

	return questions
}
