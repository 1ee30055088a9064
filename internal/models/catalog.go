package models

// ModelOption is a selectable generative model.
type ModelOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ModelOptions lists the models offered by the playground and the showcase form.
// The first entry is the default selection.
var ModelOptions = []ModelOption{
	{ID: "gemini-3-flash-preview", Name: "Gemini 3 Flash"},
	{ID: "gemini-3-pro-preview", Name: "Gemini 3 Pro"},
	{ID: "gemini-2.5-flash-lite", Name: "Gemini 2.5 Flash Lite"},
}

// DefaultModelID is the first model option.
func DefaultModelID() string {
	return ModelOptions[0].ID
}

type SectionID string

const (
	SectionIntro             SectionID = "intro"
	SectionPromptEngineering SectionID = "prompt-engineering"
	SectionModelConfig       SectionID = "model-config"
	SectionStructuredOutput  SectionID = "structured-output"
	SectionFunctionCalling   SectionID = "function-calling"
	SectionGrounding         SectionID = "grounding"
	SectionPlayground        SectionID = "playground"
	SectionShowcase          SectionID = "showcase"
)

// TutorialSection is one navigable entry of the academy.
type TutorialSection struct {
	ID          SectionID `json:"id"`
	Title       string    `json:"title"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	Route       string    `json:"route"`
}

var TutorialSections = []TutorialSection{
	{ID: SectionIntro, Title: "Введение", Icon: "🚀", Description: "Знакомство с Google AI Studio"},
	{ID: SectionPromptEngineering, Title: "Промпт-инжиниринг", Icon: "✍️", Description: "Роли, few-shot и цепочки рассуждений"},
	{ID: SectionModelConfig, Title: "Настройки модели", Icon: "🎛️", Description: "Temperature, Top-P и Top-K"},
	{ID: SectionStructuredOutput, Title: "Структурированный вывод", Icon: "🧱", Description: "Ответы по JSON-схеме"},
	{ID: SectionFunctionCalling, Title: "Вызов функций", Icon: "🛠️", Description: "Подключение инструментов"},
	{ID: SectionGrounding, Title: "Заземление", Icon: "🔎", Description: "Ответы с опорой на поиск"},
	{ID: SectionPlayground, Title: "Песочница", Icon: "🧪", Description: "Живые запросы к модели"},
	{ID: SectionShowcase, Title: "Витрина проектов", Icon: "🏆", Description: "Работы сообщества"},
}

// SectionRoute maps a section to its front-end route.
func SectionRoute(id SectionID) string {
	switch id {
	case SectionPlayground:
		return "/playground"
	case SectionShowcase:
		return "/showcase"
	default:
		return "/tutorial/" + string(id)
	}
}
