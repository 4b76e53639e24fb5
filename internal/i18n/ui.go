package i18n

// Lang is a supported UI language code.
type Lang string

// Supported languages.
const (
	LangEN   Lang = "en"
	LangPTBR Lang = "pt-br"
)

// DefaultLang is used for missing keys and unmatched locales.
const DefaultLang = LangEN

var languageNames = map[Lang]string{
	LangEN:   "English",
	LangPTBR: "Português (Brasil)",
}

var ui = map[Lang]map[string]string{
	LangEN: {
		"app.title":                       "Task Success Equation",
		"app.quit":                        "quit",
		"view.equation":                   "Equation",
		"view.radar":                      "Human vs AI",
		"equation.presets":                "Presets",
		"equation.reset":                  "Reset",
		"equation.preset.dataAnalysis":    "Data Analysis",
		"equation.preset.customerService": "Customer Service",
		"equation.preset.research":        "Research",
		"equation.preset.aiPrompting":     "AI Prompting",
		"equation.weights":                "Weights",
		"equation.weights.description":    "How much each factor matters. Always sums to 1.",
		"equation.alpha.label":            "α Knowledge weight",
		"equation.beta.label":             "β Context weight",
		"equation.gamma.label":            "γ Tools weight",
		"equation.factors":                "Factors",
		"equation.factors.description":    "How well each factor is covered, from 0 to 1.",
		"equation.knowledge.label":        "K Knowledge",
		"equation.context.label":          "C Context",
		"equation.tools.label":            "T Tools",
		"equation.title":                  "Success Probability",
		"equation.subtitle":               "Weighted geometric mean of the three factors",
		"equation.currentProbability":     "Current probability",
		"equation.chart.title":            "Sensitivity",
		"equation.chart.subtitle":         "Probability as one factor varies",
		"equation.chart.xaxis.knowledge":  "Knowledge (K)",
		"equation.chart.xaxis.context":    "Context (C)",
		"equation.chart.xaxis.tools":      "Tools (T)",
		"equation.chart.yaxis":            "Success Probability",
		"equation.factor.analyze":         "Analyze",
		"equation.factor.knowledge":       "Knowledge",
		"equation.factor.context":         "Context",
		"equation.factor.tools":           "Tools",
		"equation.factor.sensitivity":     "sensitivity",
		"equation.sweep.description":      "The other two factors are held at their current values.",
		"radar.title":                     "Human vs AI capability profile",
		"radar.human":                     "Human",
		"radar.ai":                        "AI",
		"radar.score":                     "Success probability with current weights",
		"help.focus":                      "select slider",
		"help.adjust":                     "adjust",
		"help.coarse":                     "adjust ×10",
		"help.presets":                    "presets",
		"help.reset":                      "reset",
		"help.sweep":                      "sweep factor",
		"help.view":                       "switch view",
		"help.lang":                       "language",
		"help.help":                       "more keys",
	},
	LangPTBR: {
		"app.title":                       "Equação de Sucesso da Tarefa",
		"app.quit":                        "sair",
		"view.equation":                   "Equação",
		"view.radar":                      "Humano vs IA",
		"equation.presets":                "Predefinições",
		"equation.reset":                  "Redefinir",
		"equation.preset.dataAnalysis":    "Análise de Dados",
		"equation.preset.customerService": "Atendimento ao Cliente",
		"equation.preset.research":        "Pesquisa",
		"equation.preset.aiPrompting":     "Prompts de IA",
		"equation.weights":                "Pesos",
		"equation.weights.description":    "Quanto cada fator importa. A soma é sempre 1.",
		"equation.alpha.label":            "α Peso do conhecimento",
		"equation.beta.label":             "β Peso do contexto",
		"equation.gamma.label":            "γ Peso das ferramentas",
		"equation.factors":                "Fatores",
		"equation.factors.description":    "Quão bem cada fator está coberto, de 0 a 1.",
		"equation.knowledge.label":        "K Conhecimento",
		"equation.context.label":          "C Contexto",
		"equation.tools.label":            "T Ferramentas",
		"equation.title":                  "Probabilidade de Sucesso",
		"equation.subtitle":               "Média geométrica ponderada dos três fatores",
		"equation.currentProbability":     "Probabilidade atual",
		"equation.chart.title":            "Sensibilidade",
		"equation.chart.subtitle":         "Probabilidade conforme um fator varia",
		"equation.chart.xaxis.knowledge":  "Conhecimento (K)",
		"equation.chart.xaxis.context":    "Contexto (C)",
		"equation.chart.xaxis.tools":      "Ferramentas (T)",
		"equation.chart.yaxis":            "Probabilidade de Sucesso",
		"equation.factor.analyze":         "Analisar",
		"equation.factor.knowledge":       "Conhecimento",
		"equation.factor.context":         "Contexto",
		"equation.factor.tools":           "Ferramentas",
		"equation.factor.sensitivity":     "sensibilidade",
		"equation.sweep.description":      "Os outros dois fatores ficam nos valores atuais.",
		"radar.title":                     "Perfil de capacidades: humano vs IA",
		"radar.human":                     "Humano",
		"radar.ai":                        "IA",
		"radar.score":                     "Probabilidade de sucesso com os pesos atuais",
		"help.focus":                      "escolher controle",
		"help.adjust":                     "ajustar",
		"help.coarse":                     "ajustar ×10",
		"help.presets":                    "predefinições",
		"help.reset":                      "redefinir",
		"help.sweep":                      "fator da curva",
		"help.view":                       "trocar visão",
		"help.lang":                       "idioma",
		"help.help":                       "mais teclas",
	},
}
