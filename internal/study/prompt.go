package study

const analysisSystemPrompt = `You are a patient study assistant. You turn raw study material into a structured study aid that helps the learner review and test themselves.`

const imageInstruction = `The image above is study material: a photo or scan of notes, a textbook page, a slide, or a whiteboard.

Instructions:
1. Read everything legible in the image, including diagrams and margin notes.
2. Write a clear summary of the material in 2-4 short paragraphs.
3. Extract the most important terms as a glossary, each with a one or two sentence plain-language definition, in the order they appear.
4. Write multiple-choice questions that test understanding of the material, not trivia. Each question has one correct option; "answer" is that option's letter, counting from A for the first option.
5. Finish with one short encouraging note for the learner.`

const textInstruction = `The study material below is raw text: notes, an excerpt, or an outline.

Instructions:
1. Write a clear summary of the material in 2-4 short paragraphs.
2. Extract the most important terms as a glossary, each with a one or two sentence plain-language definition, in the order they appear.
3. Write multiple-choice questions that test understanding of the material, not trivia. Each question has one correct option; "answer" is that option's letter, counting from A for the first option.
4. Finish with one short encouraging note for the learner.

Material:
`
