package todo

import (
	"html"
	"strconv"
)

const (
	pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>Todo list</title>
</head>
<body>
<h1>Todo list</h1>
<ul>
`
	noTodos  = "<li class=\"empty\">No todos yet!</li>\n"
	pageTail = `</ul>
<form method="post" action="/add_todo">
    <input type="text" name="key" placeholder="What needs to be done?" required>
    <button type="submit">Add</button>
</form>
</body>
</html>
`
)

// AppendPage renders the whole page with the todos into buff. The text is interpolated
// verbatim unless escape is set.
func AppendPage(buff []byte, todos []Todo, escape bool) []byte {
	buff = append(buff, pageHead...)

	if len(todos) == 0 {
		buff = append(buff, noTodos...)
	}

	for _, todo := range todos {
		buff = appendTodo(buff, todo, escape)
	}

	return append(buff, pageTail...)
}

func appendTodo(buff []byte, todo Todo, escape bool) []byte {
	text := todo.Text
	if escape {
		text = html.EscapeString(text)
	}

	buff = append(buff, "<li>\n    <form method=\"post\" action=\"/delete_todo\">\n        <span>"...)
	buff = append(buff, text...)
	buff = append(buff, "</span>\n        <input type=\"hidden\" name=\"key\" value='"...)
	buff = strconv.AppendInt(buff, int64(todo.ID), 10)
	buff = append(buff, "'>\n        <button type=\"submit\">Delete</button>\n    </form>\n</li>\n"...)

	return buff
}
