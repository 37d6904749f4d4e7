package ai

import "fmt"

const (
	OpSpecialists = "specialists"
	OpPharmacies  = "pharmacies"
	OpLabs        = "labs"
	OpSymptoms    = "symptom_check"
	OpSummary     = "summarize"
)

const (
	specialistsFallback = "Sorry, I couldn't find any specialists at the moment. Please try again later."
	pharmaciesFallback  = "Sorry, I couldn't find any pharmacies at the moment. Please try again later."
	labsFallback        = "Sorry, I couldn't find any labs for that test at the moment. Please try again later."
	symptomFallback     = "I'm having trouble connecting right now. Please try again in a moment."

	summaryFallbackSubjective = "Error generating summary."
	summaryFallbackObjective  = "Please review the transcript manually."
)

// SymptomCheckerInstruction frames the triage assistant. The closing link
// phrase is rendered by clients as a shortcut to the doctor search.
const SymptomCheckerInstruction = "You are a helpful AI Triage Symptom Checker for Medlink. You are not a doctor and your advice is not a substitute for professional medical consultation. Start by introducing yourself and stating this disclaimer clearly. Keep your responses concise and helpful. Always advise users to consult a real doctor for serious issues or if symptoms persist. When you advise consulting a doctor, end your response with the exact phrase: 'To find a specialist, you can [consult a doctor](find-doctor).'"

func specialistsPrompt(specialty string) string {
	return fmt.Sprintf("Find %s specialists near me. Provide a brief description for each.", specialty)
}

func pharmaciesPrompt() string {
	return "Find pharmacies near me. List at least 5 options if available."
}

func labsPrompt(testName string) string {
	return fmt.Sprintf("Find diagnostic centers or labs near me that offer \"%s\". Provide a list of options with addresses and opening hours if available.", testName)
}

func summaryPrompt(transcript string) string {
	return "Based on the following consultation transcript, generate a clinical summary in the SOAP note format " +
		"(Subjective, Objective, Assessment, Plan). Be concise and professional.\nTranscript:\n" + transcript
}
