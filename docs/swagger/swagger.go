// Package swagger Catalog Service API.
//
// API каталога товаров. Предоставляет листинг с поиском и пагинацией,
// создание записей и агрегированную статистику по каталогу.
//
// Основные возможности:
// - Листинг и поиск записей каталога с пагинацией
// - Создание новых записей (название, категория, цена)
// - Список категорий каталога
// - Статистика: количество, средняя/минимальная/максимальная цена, разбивка по категориям
// - Принудительный пересчет и сброс кеша статистики
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package swagger
