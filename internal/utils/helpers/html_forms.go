package helpers

import "fmt"

// BuildPasswordResetHTML — письмо со ссылкой на сброс пароля админки.
// В ссылке сырой секрет, поэтому само письмо нигде не логируем целиком.
func BuildPasswordResetHTML(resetURL string) string {
	return fmt.Sprintf(`
<html>
  <body style="font-family:Arial,sans-serif;background:#f7f7f7;padding:0;margin:0;">
    <table width="100%%" bgcolor="#f7f7f7" cellpadding="0" cellspacing="0" style="padding:30px 0;">
      <tr>
        <td align="center">
          <table width="600" bgcolor="#fff" cellpadding="24" cellspacing="0" style="border-radius:10px;box-shadow:0 2px 8px #eee;">
            <tr>
              <td>
                <h2 style="color:#2d5a27;margin-top:0;">Сброс пароля</h2>
                <p style="font-size:16px;color:#333;">Вы запросили сброс пароля администратора галереи бонсай.</p>
                <p>
                  <a href="%s" style="display:inline-block;padding:12px 24px;background:#2d5a27;color:#fff;text-decoration:none;border-radius:5px;font-weight:bold;margin-top:16px;">
                    Задать новый пароль
                  </a>
                </p>
                <p style="font-size:14px;color:#666;word-break:break-all;">Или скопируйте ссылку в браузер: %s</p>
                <p style="font-size:14px;color:#333;">Ссылка действует <b>1 час</b>.</p>
                <hr style="border:none;border-top:1px solid #eee;margin:32px 0 12px 0;">
                <p style="font-size:12px;color:#999;margin:0;">
                  Если вы не запрашивали сброс пароля — просто проигнорируйте это письмо.
                </p>
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>
`, resetURL, resetURL)
}
