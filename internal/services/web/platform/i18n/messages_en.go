package i18n

import "golang.org/x/text/message"

func init() {
	lang := english

	// Layout
	message.SetString(lang, "meta.description", "Inflow turns every conversation into pipeline. Capture, qualify, and follow up with leads automatically.")
	message.SetString(lang, "brand.name", "Inflow")
	message.SetString(lang, "title.page", "%s | Inflow")

	// Navigation
	message.SetString(lang, "nav.home", "Home")
	message.SetString(lang, "nav.features", "Features")
	message.SetString(lang, "nav.pricing", "Pricing")
	message.SetString(lang, "nav.faqs", "FAQs")
	message.SetString(lang, "nav.contact", "Contact")
	message.SetString(lang, "nav.login", "Login")
	message.SetString(lang, "nav.signup", "Sign Up")
	message.SetString(lang, "nav.signout", "Sign Out")
	message.SetString(lang, "nav.menu_open", "Open menu")
	message.SetString(lang, "nav.menu_close", "Close menu")

	// Pages
	message.SetString(lang, "home.heading", "Grow faster with Inflow")
	message.SetString(lang, "home.body", "One inbox for every lead, with follow-ups that send themselves.")
	message.SetString(lang, "home.cta", "Get started")
	message.SetString(lang, "features.heading", "Features")
	message.SetString(lang, "features.body", "Lead capture, smart routing, automated follow-ups, and reporting your team will actually read.")
	message.SetString(lang, "pricing.heading", "Pricing")
	message.SetString(lang, "pricing.body", "Simple plans that scale with your team. Start free, upgrade when you are ready.")
	message.SetString(lang, "faqs.heading", "Frequently asked questions")
	message.SetString(lang, "faqs.body", "Answers about accounts, billing, and integrations.")

	// Contact
	message.SetString(lang, "contact.heading", "Contact Us")
	message.SetString(lang, "contact.subheading", "Have questions about Inflow? We'd love to hear from you. Send us a message and we'll get back to you as soon as possible.")
	message.SetString(lang, "contact.form_title", "Send us a message")
	message.SetString(lang, "contact.name", "Name *")
	message.SetString(lang, "contact.email", "Email *")
	message.SetString(lang, "contact.subject", "Subject *")
	message.SetString(lang, "contact.message", "Message *")
	message.SetString(lang, "contact.name_placeholder", "Your name")
	message.SetString(lang, "contact.email_placeholder", "your@email.com")
	message.SetString(lang, "contact.subject_placeholder", "What's this about?")
	message.SetString(lang, "contact.message_placeholder", "Tell us more about how we can help you...")
	message.SetString(lang, "contact.send", "Send Message")
	message.SetString(lang, "contact.sending", "Sending...")
	message.SetString(lang, "contact.sent_title", "Message Sent!")
	message.SetString(lang, "contact.sent_body", "Thank you for reaching out to us! We'll get back to you as soon as possible.")
	message.SetString(lang, "contact.direct", "Having trouble with the form? Reach out directly:")
	message.SetString(lang, "contact.error.required", "Please fill in every field.")

	// Notices
	message.SetString(lang, "notice.signed_out", "You have been signed out.")
	message.SetString(lang, "notice.sign_out_failed", "We could not reach the sign-in service, so you were returned to the home page.")

	// Languages
	message.SetString(lang, "lang.en-US", "English")
	message.SetString(lang, "lang.pt-BR", "Português")

	// Errors
	message.SetString(lang, "error.not_found.title", "Page not found")
	message.SetString(lang, "error.not_found.body", "The page you were looking for does not exist.")
	message.SetString(lang, "error.server.title", "Something went wrong")
	message.SetString(lang, "error.server.body", "Please try again in a moment.")
}
