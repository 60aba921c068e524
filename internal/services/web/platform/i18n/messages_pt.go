package i18n

import "golang.org/x/text/message"

func init() {
	lang := portuguese

	message.SetString(lang, "meta.description", "O Inflow transforma cada conversa em oportunidades. Capture, qualifique e acompanhe leads automaticamente.")
	message.SetString(lang, "brand.name", "Inflow")
	message.SetString(lang, "title.page", "%s | Inflow")

	message.SetString(lang, "nav.home", "Início")
	message.SetString(lang, "nav.features", "Recursos")
	message.SetString(lang, "nav.pricing", "Preços")
	message.SetString(lang, "nav.faqs", "Perguntas")
	message.SetString(lang, "nav.contact", "Contato")
	message.SetString(lang, "nav.login", "Entrar")
	message.SetString(lang, "nav.signup", "Cadastrar")
	message.SetString(lang, "nav.signout", "Sair")
	message.SetString(lang, "nav.menu_open", "Abrir menu")
	message.SetString(lang, "nav.menu_close", "Fechar menu")

	message.SetString(lang, "home.heading", "Cresça mais rápido com o Inflow")
	message.SetString(lang, "home.body", "Uma caixa de entrada para todos os leads, com acompanhamentos automáticos.")
	message.SetString(lang, "home.cta", "Começar")
	message.SetString(lang, "features.heading", "Recursos")
	message.SetString(lang, "features.body", "Captura de leads, roteamento inteligente, acompanhamentos automáticos e relatórios que sua equipe vai ler.")
	message.SetString(lang, "pricing.heading", "Preços")
	message.SetString(lang, "pricing.body", "Planos simples que crescem com sua equipe. Comece grátis e faça upgrade quando quiser.")
	message.SetString(lang, "faqs.heading", "Perguntas frequentes")
	message.SetString(lang, "faqs.body", "Respostas sobre contas, cobrança e integrações.")

	message.SetString(lang, "contact.heading", "Fale Conosco")
	message.SetString(lang, "contact.subheading", "Tem perguntas sobre o Inflow? Envie uma mensagem e responderemos o quanto antes.")
	message.SetString(lang, "contact.form_title", "Envie uma mensagem")
	message.SetString(lang, "contact.name", "Nome *")
	message.SetString(lang, "contact.email", "Email *")
	message.SetString(lang, "contact.subject", "Assunto *")
	message.SetString(lang, "contact.message", "Mensagem *")
	message.SetString(lang, "contact.name_placeholder", "Seu nome")
	message.SetString(lang, "contact.email_placeholder", "seu@email.com")
	message.SetString(lang, "contact.subject_placeholder", "Sobre o que é?")
	message.SetString(lang, "contact.message_placeholder", "Conte-nos como podemos ajudar...")
	message.SetString(lang, "contact.send", "Enviar Mensagem")
	message.SetString(lang, "contact.sending", "Enviando...")
	message.SetString(lang, "contact.sent_title", "Mensagem Enviada!")
	message.SetString(lang, "contact.sent_body", "Obrigado pelo contato! Responderemos o quanto antes.")
	message.SetString(lang, "contact.direct", "Problemas com o formulário? Fale diretamente:")
	message.SetString(lang, "contact.error.required", "Preencha todos os campos.")

	message.SetString(lang, "notice.signed_out", "Você saiu da sua conta.")
	message.SetString(lang, "notice.sign_out_failed", "Não foi possível contatar o serviço de login, então você voltou para a página inicial.")

	message.SetString(lang, "lang.en-US", "English")
	message.SetString(lang, "lang.pt-BR", "Português")

	message.SetString(lang, "error.not_found.title", "Página não encontrada")
	message.SetString(lang, "error.not_found.body", "A página que você procura não existe.")
	message.SetString(lang, "error.server.title", "Algo deu errado")
	message.SetString(lang, "error.server.body", "Tente novamente em instantes.")
}
