package lecture

const transcribeInstruction = "Transcribe this audio lecture word-for-word. Provide a complete, accurate transcription of everything that was said. Include all details, concepts, and explanations."

const summaryPrompt = `You are an expert educational assistant. Based on the following lecture transcription, provide a concise, precise summary in plain text format.

Transcription:
%s

Instructions:
- Keep the response brief and focused (aim for 200-400 words total)
- Provide only the most important concepts and key points
- Use clear, direct language - avoid unnecessary elaboration
- Use plain text only - NO markdown formatting (no ###, ####, **, or any markdown symbols)
- Use simple line breaks and bullet points with dashes (-) only
- Include only essential definitions and terms
- Skip redundant explanations

Format:
1. Brief title (one line, no formatting)
2. Key concepts (2-3 bullet points max per concept, use dashes)
3. Important terms (brief definitions only)
4. Main takeaway (1-2 sentences)

Be precise and concise. Do not add filler content. Use plain text only - no markdown symbols.`

// quizPrompt arguments: transcript, difficulty, description, count.
const quizPrompt = `You are an expert teacher. Create a quiz based strictly on the following transcript.

Transcript:
"%[1]s"

Difficulty Level: %[2]s (%[3]s)

Instructions:
1. Generate %[4]d multiple-choice questions.
2. Each question must be directly answerable from the transcript.
3. Provide 4 options for each question.
4. Indicate the correct answer index (0-3).
5. Output valid JSON ONLY. Do not add any markdown formatting or explanations.

JSON Schema:
[
  {
    "question": "Question text here",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correctAnswer": 0
  }
]`
