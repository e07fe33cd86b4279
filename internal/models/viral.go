package models

type HookMatch struct {
	Type           string `json:"type"`
	Score          int    `json:"score"`
	PatternMatched string `json:"pattern_matched"`
}

type EmotionTrigger struct {
	Emotion     string `json:"emotion"`
	TriggerWord string `json:"trigger_word"`
}

type HookAnalysis struct {
	HooksFound             []HookMatch      `json:"hooks_found"`
	HookEffectivenessScore float64          `json:"hook_effectiveness_score"` // 0-100
	CuriosityElements      []string         `json:"curiosity_elements"`
	CuriosityScore         int              `json:"curiosity_score"`
	EmotionsTriggered      []EmotionTrigger `json:"emotions_triggered"`
	HasPowerHook           bool             `json:"has_power_hook"`
	Recommendations        []string         `json:"recommendations"`
	Takeaways              []string         `json:"takeaways"`
}

type LengthAnalysis struct {
	WordCount        int     `json:"word_count"`
	CharCount        int     `json:"char_count"`
	WordScore        float64 `json:"word_score"`
	CharScore        float64 `json:"char_score"`
	OptimalWordRange [2]int  `json:"optimal_word_range"`
	OptimalCharRange [2]int  `json:"optimal_char_range"`
}

type CapitalizationPattern struct {
	AllCaps       bool `json:"all_caps"`
	TitleCase     bool `json:"title_case"`
	FirstWordCaps bool `json:"first_word_caps"`
	MixedCaps     bool `json:"mixed_caps"`
}

type NumberPsychology struct {
	HasNumbers      bool     `json:"has_numbers"`
	Numbers         []string `json:"numbers"`
	UsesOddNumbers  bool     `json:"uses_odd_numbers"`
	UsesListFormat  bool     `json:"uses_list_format"`
	NumberPlacement string   `json:"number_placement,omitempty"` // "beginning", "middle/end" or empty
}

type PunctuationImpact struct {
	HasQuestionMark bool `json:"has_question_mark"`
	HasExclamation  bool `json:"has_exclamation"`
	HasColon        bool `json:"has_colon"`
	HasDash         bool `json:"has_dash"`
	HasParentheses  bool `json:"has_parentheses"`
	HasQuotes       bool `json:"has_quotes"`
}

type TitleOptimization struct {
	LengthAnalysis      LengthAnalysis        `json:"length_analysis"`
	Capitalization      CapitalizationPattern `json:"capitalization"`
	NumberPsychology    NumberPsychology      `json:"number_psychology"`
	PunctuationImpact   PunctuationImpact     `json:"punctuation_impact"`
	OptimizationScore   float64               `json:"optimization_score"` // 0-100
	Recommendations     []string              `json:"recommendations"`
	FullTitle           string                `json:"full_title"`
	ViewCount           int64                 `json:"view_count,omitempty"`
	PerformanceInsights []string              `json:"performance_insights"`
}

type ContentTemplate struct {
	Name         string   `json:"name"`
	Template     string   `json:"template"`
	Examples     []string `json:"examples"`
	FillIn       string   `json:"fill_in"`
	Instructions string   `json:"instructions"`
}

type TitleFormula struct {
	Template string `json:"template"`
	Example  string `json:"example"`
}

type TitleVariation struct {
	Type  string `json:"type"`
	Title string `json:"title"`
}

type VariationSet struct {
	Original      string           `json:"original"`
	Variations    []TitleVariation `json:"variations"`
	OriginalViews int64            `json:"original_views"`
}

type TemplateLibrary struct {
	ReadyToUseTemplates  []ContentTemplate `json:"ready_to_use_templates"`
	CommonOpeningPhrases []string          `json:"common_opening_phrases"`
	PowerWords           []string          `json:"power_words"`
	CopyPasteFormulas    []string          `json:"copy_paste_formulas"`
	TitleStarters        []string          `json:"title_starters"`
	EngagementBoosters   []string          `json:"engagement_boosters"`
	RecommendedFormulas  []TitleFormula    `json:"recommended_formulas"`
	TitleVariations      []VariationSet    `json:"title_variations"`
}

type RecipeStep struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

type ViralRecipe struct {
	Name              string       `json:"name"`
	Formula           string       `json:"formula"`
	ConcreteExample   []RecipeStep `json:"concrete_example"`
	EmotionalTriggers []string     `json:"emotional_triggers"`
	HowToApply        string       `json:"how_to_apply"`
	ExpectedCTR       string       `json:"expected_ctr"`
}

type CalendarSlot struct {
	Day          string `json:"day"`
	ContentType  string `json:"content_type"`
	TitleFormula string `json:"title_formula"`
	Reason       string `json:"reason"`
}

type QuickWin struct {
	Tip     string `json:"tip"`
	Why     string `json:"why"`
	Example string `json:"example"`
	Impact  string `json:"impact"`
}

type ViralRecipes struct {
	Recipes         []ViralRecipe  `json:"viral_recipes"`
	TitleVariations []VariationSet `json:"title_variations"`
	ContentCalendar []CalendarSlot `json:"content_calendar"`
	QuickWins       []QuickWin     `json:"quick_wins"`
	ContentGaps     []string       `json:"content_gaps"`
}
