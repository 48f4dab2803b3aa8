package agents

// Agent is a configured (model, persona) pair the relay can address through
// the LLM gateway. The Model field is the OpenRouter model identifier and is
// passed through opaquely.
type Agent struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Model     string `json:"model"`
	Specialty string `json:"specialty"`
}

// Pair is two consecutive agents from the directory. Expert Panel mode runs
// both members against the same prompt independently.
type Pair struct {
	A Agent
	B Agent
}

// directory is the fixed 20-agent roster. Order is significant: pairing and
// chaining both index into this list sequentially.
var directory = []Agent{
	{ID: "gpt-4o", Name: "GPT-4o", Model: "openai/gpt-4o", Specialty: "Strategic Analysis"},
	{ID: "chatgpt-4-turbo", Name: "ChatGPT 4 Turbo", Model: "openai/gpt-4-turbo", Specialty: "Business Strategy"},
	{ID: "deepseek-r1", Name: "DeepSeek R1", Model: "deepseek/deepseek-r1", Specialty: "Technical Expert"},
	{ID: "meta-llama-3.3", Name: "Meta Llama 3.3", Model: "meta-llama/llama-3.3-70b-instruct", Specialty: "Creative Analysis"},
	{ID: "mistral-large", Name: "Mistral Large", Model: "mistralai/mistral-large", Specialty: "Analytical Processing"},
	{ID: "gemini-2.0-flash", Name: "Gemini 2.0 Flash", Model: "google/gemini-2.0-flash-exp", Specialty: "Creative Synthesis"},
	{ID: "perplexity-pro", Name: "Perplexity Pro", Model: "perplexity/llama-3.1-sonar-huge-128k-online", Specialty: "Research Expert"},
	{ID: "gemini-pro-1.5", Name: "Gemini Pro 1.5", Model: "google/gemini-pro-1.5", Specialty: "Document Analysis"},
	{ID: "command-r-plus", Name: "Command R+", Model: "cohere/command-r-plus", Specialty: "Enterprise Solutions"},
	{ID: "qwen-2.5-72b", Name: "Qwen 2.5 72B", Model: "qwen/qwen-2.5-72b-instruct", Specialty: "Multilingual Expert"},
	{ID: "llama-3.3-70b", Name: "Llama 3.3 70B", Model: "meta-llama/llama-3.3-70b-instruct", Specialty: "Logical Reasoning"},
	{ID: "mixtral-8x22b", Name: "Mixtral 8x22B", Model: "mistralai/mixtral-8x22b-instruct", Specialty: "System Design"},
	{ID: "yi-large", Name: "Yi Large", Model: "01-ai/yi-large", Specialty: "Innovation Expert"},
	{ID: "nous-hermes-3", Name: "Nous Hermes 3", Model: "nousresearch/hermes-3-llama-3.1-405b", Specialty: "Free Thinking"},
	{ID: "wizardlm-2", Name: "WizardLM 2", Model: "microsoft/wizardlm-2-8x22b", Specialty: "Mathematical Reasoning"},
	{ID: "dolphin-mixtral", Name: "Dolphin Mixtral", Model: "cognitivecomputations/dolphin-2.9-llama3-70b", Specialty: "Bold Synthesis"},
	{ID: "openhermes-2.5", Name: "OpenHermes 2.5", Model: "teknium/openhermes-2.5-mistral-7b", Specialty: "Collaboration Expert"},
	{ID: "starling-7b", Name: "Starling 7B", Model: "berkeley-nest/starling-lm-7b-alpha", Specialty: "Quick Insights"},
	{ID: "neural-chat", Name: "Neural Chat", Model: "intel/neural-chat-7b-v3-3", Specialty: "Dialogue Expert"},
	{ID: "zephyr-beta", Name: "Zephyr Beta", Model: "huggingfaceh4/zephyr-7b-beta", Specialty: "Final Synthesis"},
}

// All returns the roster in directory order.
func All() []Agent {
	out := make([]Agent, len(directory))
	copy(out, directory)
	return out
}

// ByID looks an agent up by its id.
func ByID(id string) (Agent, bool) {
	for _, a := range directory {
		if a.ID == id {
			return a, true
		}
	}
	return Agent{}, false
}

// Count returns the roster size.
func Count() int {
	return len(directory)
}

// Pairs partitions the roster into consecutive pairs (0&1, 2&3, ...).
// A trailing unpaired agent is dropped; the shipped roster is even-length so
// this path only triggers on synthetic rosters.
func Pairs() []Pair {
	return pairsOf(directory)
}

func pairsOf(list []Agent) []Pair {
	pairs := make([]Pair, 0, len(list)/2)
	for i := 0; i+1 < len(list); i += 2 {
		pairs = append(pairs, Pair{A: list[i], B: list[i+1]})
	}
	return pairs
}
