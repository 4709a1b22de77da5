package catalog

import "edushelf/internal/entity"

var defaultBooks = []entity.Book{
	{
		Title:       "Technical English",
		Subject:     "English Communication",
		Description: "Essential English communication skills for technical professionals. Covers technical writing, presentation skills, and professional communication.",
		Keywords:    []string{"english", "communication", "technical writing", "presentation", "professional"},
	},
	{
		Title:       "Mathematics I",
		Subject:     "Engineering Mathematics",
		Description: "Fundamental mathematics concepts including calculus, differential equations, and linear algebra for engineering students.",
		Keywords:    []string{"mathematics", "calculus", "differential equations", "algebra", "engineering math"},
	},
	{
		Title:       "Mathematics II",
		Subject:     "Advanced Mathematics",
		Description: "Advanced mathematical concepts including complex analysis, Fourier transforms, and numerical methods.",
		Keywords:    []string{"advanced math", "complex analysis", "fourier", "numerical methods", "mathematics"},
	},
	{
		Title:       "Programming For Problem Solving",
		Subject:     "Computer Programming",
		Description: "Introduction to programming concepts using C language. Covers problem-solving techniques and algorithm development.",
		Keywords:    []string{"programming", "c language", "algorithms", "problem solving", "coding"},
	},
	{
		Title:       "Environmental Science",
		Subject:     "Environmental Studies",
		Description: "Study of environmental systems, pollution control, and sustainable development practices.",
		Keywords:    []string{"environment", "pollution", "sustainability", "ecology", "green technology"},
	},
	{
		Title:       "Basic Civil Engineering",
		Subject:     "Civil Engineering",
		Description: "Fundamentals of civil engineering including construction materials, surveying, and structural basics.",
		Keywords:    []string{"civil engineering", "construction", "materials", "surveying", "structures"},
	},
	{
		Title:       "Elements of Electromagnetics",
		Subject:     "Electrical Engineering",
		Description: "Comprehensive study of electromagnetic fields, waves, and their applications in engineering.",
		Keywords:    []string{"electromagnetics", "electrical", "fields", "waves", "maxwell equations"},
	},
	{
		Title:       "Signal & System",
		Subject:     "Electronics Engineering",
		Description: "Analysis of signals and systems in time and frequency domain. Essential for electronics engineers.",
		Keywords:    []string{"signals", "systems", "frequency domain", "electronics", "fourier analysis"},
	},
	{
		Title:       "Op-Amp and Linear Integrated Circuit",
		Subject:     "Electronics",
		Description: "Operational amplifiers and linear integrated circuits design and applications.",
		Keywords:    []string{"op-amp", "operational amplifier", "integrated circuits", "linear circuits", "electronics"},
	},
	{
		Title:       "Professional Ethics",
		Subject:     "Ethics",
		Description: "Professional ethics and moral responsibilities in engineering practice.",
		Keywords:    []string{"ethics", "professional", "moral", "responsibility", "engineering ethics"},
	},
	{
		Title:       "AVR Microcontroller and Embedded Systems",
		Subject:     "Embedded Systems",
		Description: "Programming and interfacing of AVR microcontrollers for embedded system applications.",
		Keywords:    []string{"microcontroller", "avr", "embedded systems", "programming", "interfacing"},
	},
}
