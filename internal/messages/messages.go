package messages

import (
	"fmt"
	"strings"
	"time"
)

const ParseModeHTML = "HTML"

func Escape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(strings.TrimSpace(s))
}

func formatDate(t time.Time) string {
	return t.UTC().Format("02/01/2006")
}

func ErrorDefault() string {
	return "🚫 <b>Ocurrió un error</b>\nIntenta de nuevo."
}

func UnknownCommand() string {
	return "❓ <b>Comando no encontrado</b>\nUsa /start para empezar."
}

func StartJoinPrompt() string {
	return "👋 <b>¡Bienvenido!</b>\n\n" +
		"🔒 Para ver los videos completos debes unirte a nuestros canales.\n" +
		"Cuando te hayas unido, pulsa <b>Verificar</b>."
}

func NotSubscribed(missing []string) string {
	lines := make([]string, 0, len(missing))
	for _, ch := range missing {
		lines = append(lines, "• "+Escape(ch))
	}
	return "❌ <b>Aún no estás suscrito</b>\n\nTe falta unirte a:\n" + strings.Join(lines, "\n")
}

func MainMenu() string {
	return "🎬 <b>Menú principal</b>\n\n¡Verificación completada! Elige una opción:"
}

func Plans(priceStars, freeLimit int) string {
	return fmt.Sprintf(
		"📦 <b>Planes</b>\n\n"+
			"🆓 <b>Gratis:</b> %d videos al día\n"+
			"💎 <b>Premium:</b> videos ilimitados por 30 días — %d ⭐",
		freeLimit, priceStars)
}

func AlreadyPremium(expiresAt time.Time) string {
	return fmt.Sprintf("💎 <b>Ya eres premium</b>\nTu acceso vence el <b>%s</b>.", formatDate(expiresAt))
}

func Profile(premium bool, expiresAt time.Time, viewsToday, freeLimit int) string {
	if premium {
		return fmt.Sprintf(
			"👤 <b>Tu perfil</b>\n\n💎 Plan: <b>Premium</b>\n📅 Vence: <b>%s</b>",
			formatDate(expiresAt))
	}
	return fmt.Sprintf(
		"👤 <b>Tu perfil</b>\n\n🆓 Plan: <b>Gratis</b>\n👁 Vistas hoy: <b>%d de %d</b>",
		viewsToday, freeLimit)
}

func Info() string {
	return "ℹ️ <b>Información</b>\n\n" +
		"Este bot comparte estrenos con nuestros grupos. " +
		"Los videos completos requieren suscripción a los canales; " +
		"con el plan gratis puedes ver algunos al día y con premium no hay límite."
}

func Help() string {
	return "❓ <b>Ayuda</b>\n\n" +
		"1. Únete a los canales y pulsa <b>Verificar</b>.\n" +
		"2. Pulsa «▶️ Ver video completo» en cualquier publicación.\n" +
		"3. ¿Se acabaron tus vistas? Compra premium en el menú."
}

func QuotaExceeded(freeLimit int) string {
	return fmt.Sprintf(
		"⛔ <b>Límite diario alcanzado</b>\n\n"+
			"Ya usaste tus %d videos gratis de hoy. "+
			"Vuelve mañana o pásate a premium para ver sin límites.",
		freeLimit)
}

func ContentUnavailable() string {
	return "😕 <b>Contenido no disponible</b>\nEste video ya no existe o fue retirado."
}

func VideoWithoutCover() string {
	return "🚫 <b>Falta la portada</b>\nPrimero envía la imagen de portada con su título como descripción y luego el video."
}

func CoverReceived(caption string) string {
	return fmt.Sprintf("🖼 <b>Portada recibida:</b> %s\n\nAhora envía el video completo.", Escape(caption))
}

func PackageCreated(caption string, delivered, total int) string {
	return fmt.Sprintf(
		"✅ <b>Publicado:</b> %s\n📣 Enviado a %d de %d grupos.",
		Escape(caption), delivered, total)
}

func PaymentInvalid() string {
	return "Pago no válido"
}

func PaymentSucceeded(expiresAt time.Time) string {
	return fmt.Sprintf(
		"🎉 <b>¡Gracias por tu compra!</b>\n\n💎 Ya eres premium hasta el <b>%s</b>. Disfruta sin límites.",
		formatDate(expiresAt))
}

func PaymentNotConfigured() string {
	return "🚫 <b>Pagos no disponibles</b>\nIntenta más tarde."
}

const (
	BtnVerify     = "✅ Verificar suscripción"
	BtnPlans      = "📦 Planes"
	BtnBuy        = "💎 Comprar premium"
	BtnProfile    = "👤 Mi perfil"
	BtnInfo       = "ℹ️ Info"
	BtnHelp       = "❓ Ayuda"
	BtnBack       = "🔙 Volver"
	BtnWatchVideo = "▶️ Ver video completo"

	InvoiceTitle       = "Plan Premium"
	InvoiceDescription = "Videos ilimitados durante 30 días"
)
