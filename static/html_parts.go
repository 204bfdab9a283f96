package static

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/0x0FACED/winged-fortune/pkg/config"
)

const (
	partHead = `
    <!DOCTYPE html>
    <html>
    <head>
        <title>Диаграмма Вороного</title>
		<style>
			body {
				background-color: #1F1F1F; /* Темный фон для всей страницы */
				color: #d3d3d3; /* Светло-серый текст */
				font-family: Consolas, monospace;
				overflow: hidden; /* Запретить прокрутку */
			}

			#container {
				display: flex;
				width: 100%;
				height: 100vh;
				box-sizing: border-box;
			}

			#left-container {
				width: 50%;
				padding: 10px;
				box-sizing: border-box;
			}

			#right-container {
				width: 50%;
				padding: 10px;
				box-sizing: border-box;
				border-left: 5px solid #757575; /* Темная граница для правого контейнера */
				overflow-y: auto; /* Вертикальная прокрутка для логов */
				overflow-x: auto; /* Вертикальная прокрутка для логов */
				background-color: #1e1e1e; /* Темный фон для контейнера логов */
			}

			#logs {
				white-space: pre-wrap; /* Сохраняем пробелы и переносим строки */
				word-wrap: break-word; /* Перенос длинных слов */
				color: #d3d3d3; /* Цвет текста в логах: светло-серый */
				font-family: Consolas, monospace; /* Моноширинный шрифт для логов */
			}

			#chart-container {
				width: 100%;
				height: 400px;
			}

			input[type="number"],
			input[type="submit"] {
				background-color: #2b2b2b; /* Темный фон для полей ввода */
				color: #d3d3d3; /* Светло-серый текст для полей */
				border: 1px solid #444; /* Темная граница */
				padding: 5px;
				margin: 5px 0;
				border-radius: 4px;
			}

			a {
				color: #8dd3c7;
			}

			label {
				color: #d3d3d3; /* Светло-серый цвет для текста меток */
			}

			h1 {
				color: #d3d3d3; /* Цвет заголовка светло-серый */
			}

			input[type="submit"]:hover {
				background-color: #444; /* Немного светлее при наведении */
				cursor: pointer;
			}

			/* Добавление стилей для темной темы */
			::-webkit-scrollbar {
				width: 8px;
			}

			::-webkit-scrollbar-thumb {
				background-color: #444; /* Цвет ползунка */
				border-radius: 10px;
			}

			::-webkit-scrollbar-track {
				background-color: #2b2b2b; /* Цвет области прокрутки */
			}
        </style>
    </head>
    <body>
        <div id="container">
            <div id="left-container">
                <h1>Параметры для диаграммы Вороного</h1>
`

	partForm = `
                <form id="diagram-form" method="POST">
                    <label for="width">Ширина (W):</label>
                    <input type="number" id="width" name="width" value="%d" min="1" max="%d"><br><br>
                    <label for="height">Высота (H):</label>
                    <input type="number" id="height" name="height" value="%d" min="1" max="%d"><br><br>
                    <label for="stations">Количество станций (n):</label>
                    <input type="number" id="stations" name="stations" value="%d" min="1" max="%d"><br><br>
                    <label for="random">Случайные станции:</label>
                    <input type="checkbox" id="random" name="random" value="true"%s><br><br>
                    <label for="seed">Зерно (0 - от времени):</label>
                    <input type="number" id="seed" name="seed" value="%d"><br><br>
                    <label for="relax">Шагов релаксации Ллойда:</label>
                    <input type="number" id="relax" name="relax" value="%d" min="0" max="%d"><br><br>
                    <input type="submit" value="Построить">
                </form>
                <p><a href="%s">SVG</a> | <a href="%s">PNG</a> | <a href="%s">GeoJSON</a></p>
    `

	Part2 = `
            </div>
            <div id="right-container">
                <h1>Логи</h1>
                <div id="logs">`

	Part3 = `
                </div>
            </div>
        </div>

        <script>
            document.getElementById('diagram-form').addEventListener('submit', function (e) {
                e.preventDefault();
                const formData = new FormData(this);
                const params = new URLSearchParams(formData).toString();

                // Отправка данных формы
                fetch('/', {
                    method: 'POST',
                    body: params,
                    headers: {
                        'Content-Type': 'application/x-www-form-urlencoded'
                    }
                })
                .then(response => {
                    if (!response.ok) {
                        throw new Error('Ошибка при отправке данных');
                    }
                    return response.text(); // Получаем HTML-ответ с обновленной диаграммой и логами
                })
                .then(html => {
                    document.open(); // Очищаем текущую страницу
                    document.write(html); // Записываем обновленный HTML
                    document.close(); // Закрываем поток
                })
                .catch(error => {
                    console.error('Ошибка:', error);
                });
            });
        </script>
    </body>
    </html>
    `
)

// Page - начало страницы с формой, заполненной параметрами p, и ссылками на
// ту же диаграмму в SVG, PNG и GeoJSON.
func Page(p config.Params) string {
	checked := ""
	if p.Random {
		checked = " checked"
	}
	q := query(p).Encode()
	return partHead + fmt.Sprintf(partForm,
		p.Width, config.MaxSize,
		p.Height, config.MaxSize,
		p.Stations, config.MaxStations,
		checked,
		p.Seed,
		p.Relax, config.MaxRelax,
		"/svg?"+q, "/png?"+q, "/geojson?"+q,
	)
}

func query(p config.Params) url.Values {
	q := url.Values{}
	q.Set("width", strconv.Itoa(p.Width))
	q.Set("height", strconv.Itoa(p.Height))
	q.Set("stations", strconv.Itoa(p.Stations))
	q.Set("relax", strconv.Itoa(p.Relax))
	q.Set("seed", strconv.FormatInt(p.Seed, 10))
	q.Set("strength", strconv.FormatFloat(p.Strength, 'g', -1, 64))
	if p.Random {
		q.Set("random", "true")
	}
	return q
}
