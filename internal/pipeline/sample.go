package pipeline

// SampleResume is the demo resume substituted when no usable resume text
// can be obtained. Deterministic on purpose: the local and remote
// evaluations of the fallback input must agree.
const SampleResume = "John Doe\nEmail: john.doe@example.com | (555) 555-5555\n\n" +
	"Experienced Software Engineer with 6+ years building web applications using JavaScript, React, Node.js, and REST APIs. " +
	"Skilled in cloud platforms (AWS), CI/CD, automated testing, and team leadership. " +
	"Delivered scalable services and improved performance by 30% through optimization and monitoring."

// SampleJobDescription pairs with SampleResume for demos.
const SampleJobDescription = "Looking for a Software Engineer with JavaScript, React, Node.js, AWS, REST APIs, testing, and CI/CD."
